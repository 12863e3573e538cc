/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

type MigrationPhase string

const (
	MigrationPhasePending   MigrationPhase = "Pending"
	MigrationPhaseClaimed   MigrationPhase = "Claimed"
	MigrationPhaseMigrating MigrationPhase = "Migrating"
	MigrationPhaseCompleted MigrationPhase = "Completed"
	MigrationPhaseFailed    MigrationPhase = "Failed"
)

// phaseRank orders phases for the monotonic-progression invariant; a
// transition must never move an object to a lower rank.
var phaseRank = map[MigrationPhase]int{
	MigrationPhasePending:   0,
	MigrationPhaseClaimed:   1,
	MigrationPhaseMigrating: 2,
	MigrationPhaseCompleted: 3,
	MigrationPhaseFailed:    3,
}

// Rank returns this phase's position in the Pending < Claimed < Migrating <
// {Completed, Failed} order. Unknown/empty phases rank below Pending.
func (p MigrationPhase) Rank() int {
	if r, ok := phaseRank[p]; ok {
		return r
	}
	return -1
}

// Terminal reports whether the phase is Completed or Failed.
func (p MigrationPhase) Terminal() bool {
	return p == MigrationPhaseCompleted || p == MigrationPhaseFailed
}

// ContainerMigrationContainer describes one container's checkpoint.
type ContainerMigrationContainer struct {
	// Name is the container name within the originating Pod.
	Name string `json:"name"`

	// ID uniquely identifies the container within this migration object.
	ID string `json:"id"`

	// ImageServer is the host:port at which the source manager's peer
	// channel serves PullImage for this checkpoint.
	ImageServer string `json:"imageServer"`

	// CheckpointPath is the path on the source node's filesystem.
	CheckpointPath string `json:"checkpointPath"`
}

// ContainerMigrationSpec defines the desired state of ContainerMigration.
type ContainerMigrationSpec struct {
	// PodTemplateHash correlates this checkpoint with any pod replica
	// derived from the same template; the key restores match on.
	PodTemplateHash string `json:"podTemplateHash"`

	// SourceNode is the logical name of the node holding the checkpoint.
	SourceNode string `json:"sourceNode"`

	// SourcePod is the originating pod name, kept for observability.
	SourcePod string `json:"sourcePod"`

	// TargetNode is unset until a target manager claims this migration.
	// Once set it never changes.
	TargetNode *string `json:"targetNode,omitempty"`

	// TargetPod is unset until claimed; set together with TargetNode.
	TargetPod *string `json:"targetPod,omitempty"`

	// Containers is the non-empty, ordered list of per-container
	// checkpoints. Immutable after creation.
	Containers []ContainerMigrationContainer `json:"containers"`
}

// ContainerMigrationStatus defines the observed state of ContainerMigration.
type ContainerMigrationStatus struct {
	Phase   MigrationPhase `json:"phase,omitempty"`
	Message string         `json:"message,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Phase",type=string,JSONPath=".status.phase"
// +kubebuilder:printcolumn:name="Source",type=string,JSONPath=".spec.sourceNode"
// +kubebuilder:printcolumn:name="Target",type=string,JSONPath=".spec.targetNode"

// ContainerMigration is the Schema for the containermigrations API. It is
// the shared ground truth for the migration protocol: created by the
// source manager on NotifyCheckpoint, mutated only by the target manager
// that successfully claims it, terminal after Completed or Failed.
type ContainerMigration struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ContainerMigrationSpec   `json:"spec,omitempty"`
	Status ContainerMigrationStatus `json:"status,omitempty"`
}

// Unclaimed reports whether no target node has claimed this migration yet.
func (m *ContainerMigration) Unclaimed() bool {
	return m.Spec.TargetNode == nil
}

// +kubebuilder:object:root=true

// ContainerMigrationList contains a list of ContainerMigration.
type ContainerMigrationList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ContainerMigration `json:"items"`
}

func init() {
	SchemeBuilder.Register(&ContainerMigration{}, &ContainerMigrationList{})
}
