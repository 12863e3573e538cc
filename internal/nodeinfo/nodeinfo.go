// Package nodeinfo resolves this process's own node address from the
// cluster when it is not supplied explicitly, the same way the teacher's
// agent client resolved a remote node's internal IP before dialing it —
// here turned inward, at startup, instead of outward, per RPC call.
package nodeinfo

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// DiscoverAddress looks up nodeName's InternalIP via the Kubernetes Node
// API. Callers use this only when node-address was not explicitly
// configured; an explicit flag or environment value always wins.
func DiscoverAddress(ctx context.Context, c client.Client, nodeName string) (string, error) {
	var node corev1.Node
	if err := c.Get(ctx, client.ObjectKey{Name: nodeName}, &node); err != nil {
		return "", fmt.Errorf("get node %s: %w", nodeName, err)
	}

	for _, addr := range node.Status.Addresses {
		if addr.Type == corev1.NodeInternalIP {
			return addr.Address, nil
		}
	}

	return "", fmt.Errorf("no internal IP found for node %s", nodeName)
}
