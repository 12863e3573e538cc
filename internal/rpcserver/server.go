// Package rpcserver adapts the Migration Coordinator to the generated
// ManagerService gRPC interface. A single instance backs both the peer TCP
// listener and the local shim Unix-socket listener (spec.md §4.3, §9).
package rpcserver

import (
	"context"

	"go.uber.org/zap"

	pb "github.com/shiftpod/migration-manager/api/proto"
	"github.com/shiftpod/migration-manager/internal/coordinator"
)

// Server implements pb.ManagerServiceServer by delegating every RPC to a
// Coordinator.
type Server struct {
	pb.UnimplementedManagerServiceServer

	coord  *coordinator.Coordinator
	logger *zap.Logger
}

// New returns a Server backed by coord.
func New(coord *coordinator.Coordinator, logger *zap.Logger) *Server {
	return &Server{coord: coord, logger: logger}
}

func (s *Server) NotifyCheckpoint(ctx context.Context, req *pb.NotifyCheckpointRequest) (*pb.NotifyCheckpointResponse, error) {
	info := req.GetPodInfo()
	var pod coordinator.PodInfo
	if info != nil {
		pod = coordinator.PodInfo{
			Name:          info.GetName(),
			TemplateHash:  info.GetTemplateHash(),
			ContainerName: info.GetContainerName(),
		}
	}

	if err := s.coord.NotifyCheckpoint(ctx, req.GetContainerId(), req.GetCheckpointPath(), pod); err != nil {
		return nil, err
	}
	return &pb.NotifyCheckpointResponse{}, nil
}

func (s *Server) RequestRestore(ctx context.Context, req *pb.RequestRestoreRequest) (*pb.RequestRestoreResponse, error) {
	result, err := s.coord.RequestRestore(ctx, req.GetPodTemplateHash(), req.GetPodName())
	if err != nil {
		return nil, err
	}
	return &pb.RequestRestoreResponse{
		Found:          result.Found,
		CheckpointPath: result.CheckpointPath,
	}, nil
}

func (s *Server) PullImage(req *pb.PullImageRequest, stream pb.ManagerService_PullImageServer) error {
	return s.coord.PullImage(stream.Context(), req.GetCheckpointPath(), func(chunk []byte) error {
		return stream.Send(&pb.PullImageResponse{Chunk: chunk})
	})
}

func (s *Server) FinishRestore(ctx context.Context, req *pb.FinishRestoreRequest) (*pb.FinishRestoreResponse, error) {
	if err := s.coord.FinishRestore(ctx, req.GetContainerId(), req.GetSuccess()); err != nil {
		return nil, err
	}
	return &pb.FinishRestoreResponse{}, nil
}
