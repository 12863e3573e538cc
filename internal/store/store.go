// Package store implements the Resource Model: the thin, non-caching
// wrapper around the cluster's ContainerMigration objects that the
// coordinator reads and writes. Every call hits the backing client
// directly; optimistic concurrency is delegated entirely to the client's
// resourceVersion protocol.
package store

import (
	"context"
	"errors"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"sigs.k8s.io/controller-runtime/pkg/client"

	migrationv1 "github.com/shiftpod/migration-manager/api/v1"
)

// Sentinel errors recovered internally by the coordinator (spec.md §7);
// never surfaced to RPC callers as-is.
var (
	// ErrConflict is returned by Replace when the object's version token
	// is stale — another writer updated it first.
	ErrConflict = errors.New("store: conflict")

	// ErrAlreadyExists is returned by Create when an object with the same
	// name already exists.
	ErrAlreadyExists = errors.New("store: already exists")
)

// ResourceStore is the Resource Model's logical surface: create, list,
// replace. It does not cache.
type ResourceStore interface {
	// Create persists a brand-new ContainerMigration. Returns
	// ErrAlreadyExists if an object of the same name already exists.
	Create(ctx context.Context, m *migrationv1.ContainerMigration) error

	// List returns every ContainerMigration currently known to the store.
	List(ctx context.Context) ([]migrationv1.ContainerMigration, error)

	// Replace writes back a mutated ContainerMigration's spec/metadata,
	// carrying the version token captured at the time it was last read.
	// Returns ErrConflict if that token is stale.
	Replace(ctx context.Context, m *migrationv1.ContainerMigration) error

	// ReplaceStatus writes back only the status subresource (phase,
	// message), under the same optimistic-concurrency rules as Replace.
	ReplaceStatus(ctx context.Context, m *migrationv1.ContainerMigration) error
}

type k8sResourceStore struct {
	client    client.Client
	namespace string
}

// New returns a ResourceStore backed by a controller-runtime client,
// scoped to namespace.
func New(c client.Client, namespace string) ResourceStore {
	return &k8sResourceStore{client: c, namespace: namespace}
}

func (s *k8sResourceStore) Create(ctx context.Context, m *migrationv1.ContainerMigration) error {
	m.Namespace = s.namespace
	if err := s.client.Create(ctx, m); err != nil {
		if apierrors.IsAlreadyExists(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("create migration %s: %w", m.Name, err)
	}
	return nil
}

func (s *k8sResourceStore) List(ctx context.Context) ([]migrationv1.ContainerMigration, error) {
	var list migrationv1.ContainerMigrationList
	if err := s.client.List(ctx, &list, client.InNamespace(s.namespace)); err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	return list.Items, nil
}

func (s *k8sResourceStore) Replace(ctx context.Context, m *migrationv1.ContainerMigration) error {
	if err := s.client.Update(ctx, m); err != nil {
		if apierrors.IsConflict(err) {
			return ErrConflict
		}
		return fmt.Errorf("replace migration %s: %w", m.Name, err)
	}
	return nil
}

func (s *k8sResourceStore) ReplaceStatus(ctx context.Context, m *migrationv1.ContainerMigration) error {
	if err := s.client.Status().Update(ctx, m); err != nil {
		if apierrors.IsConflict(err) {
			return ErrConflict
		}
		return fmt.Errorf("replace migration status %s: %w", m.Name, err)
	}
	return nil
}
