package coordinator

import (
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// migrationName deterministically derives the ContainerMigration object
// name from the pod template hash and container id, so that duplicate
// NotifyCheckpoint calls collide at create time (spec.md §4.4.1).
func migrationName(templateHash, containerID string) string {
	return fmt.Sprintf("migration-%s-%s", templateHash, containerID)
}

func objectMeta(name string) metav1.ObjectMeta {
	return metav1.ObjectMeta{Name: name}
}
