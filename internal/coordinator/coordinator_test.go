package coordinator_test

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	pb "github.com/shiftpod/migration-manager/api/proto"
	migrationv1 "github.com/shiftpod/migration-manager/api/v1"
	"github.com/shiftpod/migration-manager/internal/coordinator"
	"github.com/shiftpod/migration-manager/internal/rpcserver"
	"github.com/shiftpod/migration-manager/internal/store"
)

func newFakeStore() store.ResourceStore {
	scheme := runtime.NewScheme()
	Expect(clientgoscheme.AddToScheme(scheme)).To(Succeed())
	Expect(migrationv1.AddToScheme(scheme)).To(Succeed())

	c := fake.NewClientBuilder().
		WithScheme(scheme).
		WithStatusSubresource(&migrationv1.ContainerMigration{}).
		Build()
	return store.New(c, "default")
}

// startPeer serves checkpointDir's files over a real TCP listener and
// returns its dialable address plus a shutdown func.
func startPeer(checkpointDir string) (string, func()) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).NotTo(HaveOccurred())

	node := coordinator.NodeInfo{Name: "source-node", Address: lis.Addr().String()}
	peerStore := newFakeStore()
	coord := coordinator.New(peerStore, node, checkpointDir, zap.NewNop())
	srv := grpc.NewServer(grpc.ForceServerCodec(pb.Codec))
	pb.RegisterManagerServiceServer(srv, rpcserver.New(coord, zap.NewNop()))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = srv.Serve(lis)
	}()

	return lis.Addr().String(), func() {
		srv.GracefulStop()
		wg.Wait()
	}
}

var _ = Describe("Coordinator", func() {
	var (
		ctx           context.Context
		checkpointDir string
	)

	BeforeEach(func() {
		ctx = context.Background()
		checkpointDir = GinkgoT().TempDir()
	})

	Describe("NotifyCheckpoint", func() {
		It("creates a Pending migration", func() {
			s := newFakeStore()
			node := coordinator.NodeInfo{Name: "node-a", Address: "10.0.0.1:9090"}
			c := coordinator.New(s, node, checkpointDir, zap.NewNop())

			pod := coordinator.PodInfo{Name: "web-0", TemplateHash: "abc123", ContainerName: "app"}
			Expect(c.NotifyCheckpoint(ctx, "container-1", "/var/lib/checkpoints/container-1.tar", pod)).To(Succeed())

			migrations, err := s.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(migrations).To(HaveLen(1))
			Expect(migrations[0].Status.Phase).To(Equal(migrationv1.MigrationPhasePending))
			Expect(migrations[0].Spec.Containers[0].ImageServer).To(Equal("10.0.0.1:9090"))
		})

		It("rejects incomplete pod_info", func() {
			s := newFakeStore()
			node := coordinator.NodeInfo{Name: "node-a", Address: "10.0.0.1:9090"}
			c := coordinator.New(s, node, checkpointDir, zap.NewNop())

			err := c.NotifyCheckpoint(ctx, "container-1", "/tmp/x", coordinator.PodInfo{Name: "web-0"})
			Expect(err).To(HaveOccurred())
			Expect(grpcstatus.Code(err)).To(Equal(codes.InvalidArgument))
		})

		It("reports AlreadyExists for a duplicate notification", func() {
			s := newFakeStore()
			node := coordinator.NodeInfo{Name: "node-a", Address: "10.0.0.1:9090"}
			c := coordinator.New(s, node, checkpointDir, zap.NewNop())
			pod := coordinator.PodInfo{Name: "web-0", TemplateHash: "abc123", ContainerName: "app"}

			Expect(c.NotifyCheckpoint(ctx, "container-1", "/tmp/x", pod)).To(Succeed())
			err := c.NotifyCheckpoint(ctx, "container-1", "/tmp/x", pod)

			Expect(err).To(HaveOccurred())
			Expect(grpcstatus.Code(err)).To(Equal(codes.AlreadyExists))
		})
	})

	Describe("RequestRestore", func() {
		It("reports Found=false when no matching migration exists", func() {
			s := newFakeStore()
			node := coordinator.NodeInfo{Name: "node-b", Address: "10.0.0.2:9090"}
			c := coordinator.New(s, node, checkpointDir, zap.NewNop())

			result, err := c.RequestRestore(ctx, "does-not-exist", "web-0")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Found).To(BeFalse())
		})

		It("claims, transfers and marks the migration Migrating on success", func() {
			sourceCheckpointDir := GinkgoT().TempDir()
			checkpointFile := filepath.Join(sourceCheckpointDir, "container-1.tar")
			Expect(os.WriteFile(checkpointFile, []byte("checkpoint-bytes"), 0o644)).To(Succeed())

			peerAddr, stopPeer := startPeer(sourceCheckpointDir)
			defer stopPeer()

			s := newFakeStore()
			sourcePod := coordinator.PodInfo{Name: "web-0", TemplateHash: "hash-1", ContainerName: "app"}
			sourceNode := coordinator.NodeInfo{Name: "source-node", Address: peerAddr}
			sourceCoord := coordinator.New(s, sourceNode, sourceCheckpointDir, zap.NewNop())
			Expect(sourceCoord.NotifyCheckpoint(ctx, "container-1", checkpointFile, sourcePod)).To(Succeed())

			targetCheckpointDir := GinkgoT().TempDir()
			targetNode := coordinator.NodeInfo{Name: "target-node", Address: "10.0.0.2:9090"}
			targetCoord := coordinator.New(s, targetNode, targetCheckpointDir, zap.NewNop())

			result, err := targetCoord.RequestRestore(ctx, "hash-1", "web-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Found).To(BeTrue())

			contents, err := os.ReadFile(result.CheckpointPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(contents).To(Equal([]byte("checkpoint-bytes")))

			migrations, err := s.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(migrations).To(HaveLen(1))
			Expect(migrations[0].Status.Phase).To(Equal(migrationv1.MigrationPhaseMigrating))
			Expect(*migrations[0].Spec.TargetNode).To(Equal("target-node"))
		})

		It("marks the migration Failed when the transfer cannot complete", func() {
			s := newFakeStore()
			sourcePod := coordinator.PodInfo{Name: "web-0", TemplateHash: "hash-2", ContainerName: "app"}
			sourceNode := coordinator.NodeInfo{Name: "unreachable-node", Address: "127.0.0.1:1"}
			sourceCoord := coordinator.New(s, sourceNode, checkpointDir, zap.NewNop())
			Expect(sourceCoord.NotifyCheckpoint(ctx, "container-2", "/does/not/matter.tar", sourcePod)).To(Succeed())

			targetNode := coordinator.NodeInfo{Name: "target-node", Address: "10.0.0.2:9090"}
			targetCoord := coordinator.New(s, targetNode, checkpointDir, zap.NewNop())

			_, err := targetCoord.RequestRestore(ctx, "hash-2", "web-1")
			Expect(err).To(HaveOccurred())
			Expect(grpcstatus.Code(err)).To(Equal(codes.Internal))

			migrations, err := s.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(migrations[0].Status.Phase).To(Equal(migrationv1.MigrationPhaseFailed))
		})
	})

	Describe("FinishRestore", func() {
		It("marks a matching migration Completed on success", func() {
			s := newFakeStore()
			node := coordinator.NodeInfo{Name: "node-a", Address: "10.0.0.1:9090"}
			c := coordinator.New(s, node, checkpointDir, zap.NewNop())
			pod := coordinator.PodInfo{Name: "web-0", TemplateHash: "hash-3", ContainerName: "app"}
			Expect(c.NotifyCheckpoint(ctx, "container-3", "/tmp/x", pod)).To(Succeed())

			Expect(c.FinishRestore(ctx, "container-3", true)).To(Succeed())

			migrations, err := s.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(migrations[0].Status.Phase).To(Equal(migrationv1.MigrationPhaseCompleted))
		})

		It("is a no-op when no migration matches the container", func() {
			s := newFakeStore()
			node := coordinator.NodeInfo{Name: "node-a", Address: "10.0.0.1:9090"}
			c := coordinator.New(s, node, checkpointDir, zap.NewNop())

			Expect(c.FinishRestore(ctx, "no-such-container", true)).To(Succeed())
		})

		It("is idempotent when called again on an already-terminal migration", func() {
			s := newFakeStore()
			node := coordinator.NodeInfo{Name: "node-a", Address: "10.0.0.1:9090"}
			c := coordinator.New(s, node, checkpointDir, zap.NewNop())
			pod := coordinator.PodInfo{Name: "web-0", TemplateHash: "hash-4", ContainerName: "app"}
			Expect(c.NotifyCheckpoint(ctx, "container-4", "/tmp/x", pod)).To(Succeed())

			Expect(c.FinishRestore(ctx, "container-4", false)).To(Succeed())
			Expect(c.FinishRestore(ctx, "container-4", true)).To(Succeed())

			migrations, err := s.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(migrations[0].Status.Phase).To(Equal(migrationv1.MigrationPhaseFailed))
		})
	})
})
