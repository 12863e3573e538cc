// Package coordinator implements the Migration Coordinator: the state
// machine that drives NotifyCheckpoint, RequestRestore, FinishRestore and
// PullImage against the Resource Model and the Checkpoint Transport. The
// coordinator is stateless across calls — all durable state lives in the
// store.
package coordinator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	migrationv1 "github.com/shiftpod/migration-manager/api/v1"
	"github.com/shiftpod/migration-manager/internal/store"
	"github.com/shiftpod/migration-manager/internal/transport"
)

// claimRetryBudget bounds how many claim attempts RequestRestore makes,
// retrying after each lost race, before giving up (spec.md §4.4.2 step 5).
const claimRetryBudget = 5

// NodeInfo is this process's identity: constant for its lifetime.
type NodeInfo struct {
	Name    string
	Address string // host:port of this node's peer channel
}

// PodInfo mirrors the shim-supplied pod_info on NotifyCheckpoint.
type PodInfo struct {
	Name          string
	TemplateHash  string
	ContainerName string
}

// Coordinator implements the four migration operations.
type Coordinator struct {
	store         store.ResourceStore
	node          NodeInfo
	checkpointDir string
	logger        *zap.Logger
}

// New returns a Coordinator bound to the given store and node identity.
func New(s store.ResourceStore, node NodeInfo, checkpointDir string, logger *zap.Logger) *Coordinator {
	return &Coordinator{store: s, node: node, checkpointDir: checkpointDir, logger: logger}
}

// NotifyCheckpoint advertises a freshly taken checkpoint to the cluster.
// See spec.md §4.4.1.
func (c *Coordinator) NotifyCheckpoint(ctx context.Context, containerID, checkpointPath string, pod PodInfo) error {
	if pod.Name == "" || pod.TemplateHash == "" || pod.ContainerName == "" {
		return status.Error(codes.InvalidArgument, "pod_info is required")
	}

	name := migrationName(pod.TemplateHash, containerID)
	migration := &migrationv1.ContainerMigration{
		ObjectMeta: objectMeta(name),
		Spec: migrationv1.ContainerMigrationSpec{
			PodTemplateHash: pod.TemplateHash,
			SourceNode:      c.node.Name,
			SourcePod:       pod.Name,
			Containers: []migrationv1.ContainerMigrationContainer{
				{
					Name:           pod.ContainerName,
					ID:             containerID,
					ImageServer:    c.node.Address,
					CheckpointPath: checkpointPath,
				},
			},
		},
		Status: migrationv1.ContainerMigrationStatus{
			Phase: migrationv1.MigrationPhasePending,
		},
	}

	if err := c.store.Create(ctx, migration); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return status.Errorf(codes.AlreadyExists, "migration %s already exists", name)
		}
		return status.Errorf(codes.Internal, "create migration: %v", err)
	}

	c.logger.Info("created migration", zap.String("name", name), zap.String("source_node", c.node.Name))
	return nil
}

// RequestRestoreResult is the outcome of RequestRestore.
type RequestRestoreResult struct {
	Found          bool
	CheckpointPath string
}

// RequestRestore is the central claim operation. See spec.md §4.4.2.
func (c *Coordinator) RequestRestore(ctx context.Context, podTemplateHash, podName string) (RequestRestoreResult, error) {
	var claimed *migrationv1.ContainerMigration

	for attempt := 0; attempt < claimRetryBudget; attempt++ {
		migrations, err := c.store.List(ctx)
		if err != nil {
			return RequestRestoreResult{}, status.Errorf(codes.Internal, "list migrations: %v", err)
		}

		candidate := findUnclaimed(migrations, podTemplateHash)
		if candidate == nil {
			return RequestRestoreResult{Found: false}, nil
		}

		candidate.Spec.TargetNode = &c.node.Name
		candidate.Spec.TargetPod = &podName

		if err := c.store.Replace(ctx, candidate); err != nil {
			if errors.Is(err, store.ErrConflict) {
				c.logger.Info("lost claim race, retrying", zap.String("migration", candidate.Name), zap.Int("attempt", attempt))
				continue
			}
			return RequestRestoreResult{}, status.Errorf(codes.Internal, "claim migration: %v", err)
		}

		claimed = candidate
		break
	}

	if claimed == nil {
		return RequestRestoreResult{}, status.Error(codes.Internal, "exhausted claim retry budget")
	}

	claimed.Status.Phase = migrationv1.MigrationPhaseClaimed
	claimed.Status.Message = "claimed by " + c.node.Name
	if err := c.store.ReplaceStatus(ctx, claimed); err != nil {
		c.logger.Warn("failed to record Claimed status", zap.String("migration", claimed.Name), zap.Error(err))
	}

	container := claimed.Spec.Containers[0]
	localPath := fmt.Sprintf("%s/%s", c.checkpointDir, container.ID)

	if err := transport.Pull(ctx, container.ImageServer, container.CheckpointPath, localPath); err != nil {
		c.logger.Error("checkpoint transfer failed", zap.String("migration", claimed.Name), zap.Error(err))

		claimed.Status.Phase = migrationv1.MigrationPhaseFailed
		claimed.Status.Message = "transfer failed: " + err.Error()
		if serr := c.store.ReplaceStatus(ctx, claimed); serr != nil {
			c.logger.Warn("failed to record Failed status after transfer error", zap.String("migration", claimed.Name), zap.Error(serr))
		}

		return RequestRestoreResult{}, status.Errorf(codes.Internal, "transfer checkpoint: %v", err)
	}

	claimed.Status.Phase = migrationv1.MigrationPhaseMigrating
	claimed.Status.Message = "checkpoint transferred successfully"
	if err := c.store.ReplaceStatus(ctx, claimed); err != nil {
		// best-effort: the Migrating phase is advisory, next writer wins.
		c.logger.Warn("failed to record Migrating status", zap.String("migration", claimed.Name), zap.Error(err))
	}

	return RequestRestoreResult{Found: true, CheckpointPath: localPath}, nil
}

// FinishRestore reports the outcome of a restore back to the migration
// object. See spec.md §4.4.3.
func (c *Coordinator) FinishRestore(ctx context.Context, containerID string, success bool) error {
	migrations, err := c.store.List(ctx)
	if err != nil {
		return status.Errorf(codes.Internal, "list migrations: %v", err)
	}

	target := findByContainerID(migrations, containerID)
	if target == nil {
		// absence is not an error: the shim may retry.
		return nil
	}

	if target.Status.Phase.Terminal() {
		// already terminal: repeated calls leave the phase unchanged.
		return nil
	}

	if success {
		target.Status.Phase = migrationv1.MigrationPhaseCompleted
		target.Status.Message = "restore completed successfully"
	} else {
		target.Status.Phase = migrationv1.MigrationPhaseFailed
		target.Status.Message = "restore failed"
	}

	if err := c.store.ReplaceStatus(ctx, target); err != nil {
		// terminal status is advisory; a conflict here is logged, not surfaced.
		c.logger.Warn("failed to record terminal status", zap.String("migration", target.Name), zap.Error(err))
	}

	return nil
}

// PullImage delegates directly to the Checkpoint Transport server side.
// See spec.md §4.4.4.
func (c *Coordinator) PullImage(ctx context.Context, checkpointPath string, send func(chunk []byte) error) error {
	return transport.ServeFile(ctx, checkpointPath, send)
}

func findUnclaimed(migrations []migrationv1.ContainerMigration, podTemplateHash string) *migrationv1.ContainerMigration {
	for i := range migrations {
		m := &migrations[i]
		if m.Spec.PodTemplateHash == podTemplateHash && m.Unclaimed() {
			return m
		}
	}
	return nil
}

func findByContainerID(migrations []migrationv1.ContainerMigration, containerID string) *migrationv1.ContainerMigration {
	for i := range migrations {
		m := &migrations[i]
		for _, container := range m.Spec.Containers {
			if container.ID == containerID {
				return m
			}
		}
	}
	return nil
}
