package transport

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
)

func writeTempFile(t *testing.T, dir string, size int) string {
	t.Helper()
	data := bytes.Repeat([]byte{0xAB}, size)
	path := filepath.Join(dir, "checkpoint.tar")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestServeFileEmptyFile(t *testing.T) {
	g := NewWithT(t)
	dir := t.TempDir()
	path := writeTempFile(t, dir, 0)

	var chunks [][]byte
	err := ServeFile(context.Background(), path, func(chunk []byte) error {
		chunks = append(chunks, chunk)
		return nil
	})

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(chunks).To(BeEmpty())
}

func TestServeFileShorterThanOneChunk(t *testing.T) {
	g := NewWithT(t)
	dir := t.TempDir()
	path := writeTempFile(t, dir, ChunkSize/2)

	var chunks [][]byte
	err := ServeFile(context.Background(), path, func(chunk []byte) error {
		buf := make([]byte, len(chunk))
		copy(buf, chunk)
		chunks = append(chunks, buf)
		return nil
	})

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(chunks).To(HaveLen(1))
	g.Expect(chunks[0]).To(HaveLen(ChunkSize / 2))
}

func TestServeFileExactMultipleOfChunkSize(t *testing.T) {
	g := NewWithT(t)
	dir := t.TempDir()
	path := writeTempFile(t, dir, ChunkSize*3)

	var chunks [][]byte
	err := ServeFile(context.Background(), path, func(chunk []byte) error {
		buf := make([]byte, len(chunk))
		copy(buf, chunk)
		chunks = append(chunks, buf)
		return nil
	})

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(chunks).To(HaveLen(3))
	for _, c := range chunks {
		g.Expect(c).To(HaveLen(ChunkSize))
	}
}

func TestServeFileConcatenationPreservesContent(t *testing.T) {
	g := NewWithT(t)
	dir := t.TempDir()
	original := bytes.Repeat([]byte{0x01, 0x02, 0x03, 0x04}, ChunkSize) // 4*ChunkSize bytes, not chunk-aligned content-wise but size is
	path := filepath.Join(dir, "checkpoint.tar")
	g.Expect(os.WriteFile(path, original, 0o644)).To(Succeed())

	var got bytes.Buffer
	err := ServeFile(context.Background(), path, func(chunk []byte) error {
		got.Write(chunk)
		return nil
	})

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(got.Bytes()).To(Equal(original))
}

func TestServeFileMissingFile(t *testing.T) {
	g := NewWithT(t)
	dir := t.TempDir()

	err := ServeFile(context.Background(), filepath.Join(dir, "absent.tar"), func([]byte) error {
		return nil
	})

	g.Expect(err).To(HaveOccurred())
}

func TestServeFileStopsOnConsumerError(t *testing.T) {
	g := NewWithT(t)
	dir := t.TempDir()
	path := writeTempFile(t, dir, ChunkSize*4)

	calls := 0
	boom := context.Canceled
	err := ServeFile(context.Background(), path, func([]byte) error {
		calls++
		if calls == 1 {
			return boom
		}
		return nil
	})

	g.Expect(err).To(MatchError(boom))
	g.Expect(calls).To(Equal(1))
}
