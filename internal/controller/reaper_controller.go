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

// Package controller holds the external reaper: a standalone
// controller-runtime reconciler, never invoked by the coordinator, that
// garbage-collects terminal ContainerMigration objects. Spec.md §1 keeps
// garbage collection out of the core and leaves it to "an external
// reaper"; this is that reaper, run as its own binary (cmd/reaper).
package controller

import (
	"context"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	migrationv1 "github.com/shiftpod/migration-manager/api/v1"
)

// MigrationReaperReconciler deletes ContainerMigration objects that are in
// a terminal phase (Completed or Failed) and were created more than TTL
// ago. Age is measured from the object's creation timestamp; the time at
// which it became terminal is not recorded or used.
type MigrationReaperReconciler struct {
	client.Client
	Scheme *runtime.Scheme
	TTL    time.Duration
}

// +kubebuilder:rbac:groups=shiftpod.io,resources=containermigrations,verbs=get;list;watch;delete

func (r *MigrationReaperReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	var migration migrationv1.ContainerMigration
	if err := r.Get(ctx, req.NamespacedName, &migration); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	if !migration.Status.Phase.Terminal() {
		return ctrl.Result{}, nil
	}

	age := time.Since(migration.CreationTimestamp.Time)
	if age < r.TTL {
		return ctrl.Result{RequeueAfter: r.TTL - age}, nil
	}

	logger.Info("reaping terminal migration", "name", migration.Name, "phase", migration.Status.Phase, "age", age)

	if err := r.Delete(ctx, &migration); err != nil {
		if apierrors.IsNotFound(err) {
			return ctrl.Result{}, nil
		}
		return ctrl.Result{}, err
	}

	return ctrl.Result{}, nil
}

// SetupWithManager sets up the controller with the Manager.
func (r *MigrationReaperReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&migrationv1.ContainerMigration{}).
		Named("migrationreaper").
		Complete(r)
}
