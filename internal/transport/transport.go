// Package transport implements the Checkpoint Transport: chunked streaming
// of a local checkpoint file to a remote peer over the ManagerService's
// PullImage RPC, with backpressure and early-cancellation handling.
package transport

import (
	"context"
	"fmt"
	"io"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	pb "github.com/shiftpod/migration-manager/api/proto"
)

// ChunkSize is the fixed read-buffer size; each non-empty read is emitted
// as one PullImageResponse chunk.
const ChunkSize = 8192

// QueueCapacity bounds the handoff between the file-reading task and the
// RPC response task. A slow consumer stalls the reader instead of the
// reader buffering the whole file in memory.
const QueueCapacity = 4

// ServeFile implements the server side of PullImage: it reads
// checkpointPath in ChunkSize blocks and passes each block to send. The
// reader runs decoupled from send via a buffered channel of QueueCapacity so
// a slow sender backpressures the reader rather than the reader racing
// ahead.
func ServeFile(ctx context.Context, checkpointPath string, send func(chunk []byte) error) error {
	f, err := os.Open(checkpointPath)
	if err != nil {
		if os.IsNotExist(err) {
			return status.Errorf(codes.NotFound, "checkpoint not found: %s", checkpointPath)
		}
		if os.IsPermission(err) {
			return status.Errorf(codes.PermissionDenied, "checkpoint unreadable: %s", checkpointPath)
		}
		return status.Errorf(codes.Internal, "open checkpoint: %v", err)
	}
	defer f.Close()

	type frame struct {
		data []byte
		err  error
	}
	frames := make(chan frame, QueueCapacity)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		defer close(frames)
		buf := make([]byte, ChunkSize)
		for {
			n, readErr := f.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				select {
				case frames <- frame{data: chunk}:
				case <-ctx.Done():
					return
				}
			}
			if readErr == io.EOF {
				return
			}
			if readErr != nil {
				select {
				case frames <- frame{err: readErr}:
				case <-ctx.Done():
				}
				return
			}
		}
	}()

	for fr := range frames {
		if fr.err != nil {
			return status.Errorf(codes.Internal, "read checkpoint: %v", fr.err)
		}
		if err := send(fr.data); err != nil {
			// consumer disappeared; the goroutine above will observe
			// ctx.Done() on its next send attempt and exit.
			return err
		}
	}
	return nil
}

// Pull implements the client side of PullImage: it dials peerAddress,
// issues PullImage for remotePath, and writes every received chunk, in
// arrival order, into a freshly created (truncated) localPath. On any
// failure the partial file is left on disk for diagnostics.
func Pull(ctx context.Context, peerAddress, remotePath, localPath string) error {
	conn, err := grpc.NewClient(peerAddress,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(pb.Codec)),
	)
	if err != nil {
		return fmt.Errorf("dial %s: %w", peerAddress, err)
	}
	defer conn.Close()

	client := pb.NewManagerServiceClient(conn)
	stream, err := client.PullImage(ctx, &pb.PullImageRequest{CheckpointPath: remotePath})
	if err != nil {
		return fmt.Errorf("pull image from %s: %w", peerAddress, err)
	}

	out, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", localPath, err)
	}
	defer out.Close()

	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("receive chunk from %s: %w", peerAddress, err)
		}
		if _, err := out.Write(resp.GetChunk()); err != nil {
			return fmt.Errorf("write %s: %w", localPath, err)
		}
	}
}
