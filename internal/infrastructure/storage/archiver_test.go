package storage

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
)

type flakyStore struct {
	failures int
	calls    int
	objects  map[string][]byte
}

func (s *flakyStore) UploadFile(_ context.Context, objectName string, reader io.Reader, size int64, _ string) error {
	s.calls++
	if s.calls <= s.failures {
		return errors.New("connection reset")
	}
	b, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	if int64(len(b)) != size {
		return errors.New("size mismatch")
	}
	if s.objects == nil {
		s.objects = map[string][]byte{}
	}
	s.objects[objectName] = b
	return nil
}

func (s *flakyStore) GetFileURL(_ context.Context, objectName string, _ time.Duration) (string, error) {
	return "https://files.example.com/" + objectName, nil
}

func (s *flakyStore) ListFiles(_ context.Context, prefix string) ([]string, error) {
	var out []string
	for k := range s.objects {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			out = append(out, k)
		}
	}
	return out, nil
}

func fastRetry(max uint64) func() backoff.BackOff {
	return func() backoff.BackOff {
		return backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Millisecond), max)
	}
}

func TestArchiveRetriesUntilSuccess(t *testing.T) {
	store := &flakyStore{failures: 2}
	a := NewExportArchiver(store)
	a.NewBackOff = fastRetry(5)

	key := "exports/m1/Notulensi_Weekly.pdf"
	if err := a.Archive(context.Background(), key, []byte("%PDF-1.3"), "application/pdf"); err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if store.calls != 3 {
		t.Fatalf("calls: got %d want 3", store.calls)
	}
	if string(store.objects[key]) != "%PDF-1.3" {
		t.Fatalf("stored content: got %q", store.objects[key])
	}

	list, err := a.List(context.Background(), "exports/m1/")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].FileName != "Notulensi_Weekly.pdf" || list[0].URL != "https://files.example.com/"+key {
		t.Fatalf("List: got %+v", list)
	}
}

func TestArchiveGivesUp(t *testing.T) {
	store := &flakyStore{failures: 10}
	a := NewExportArchiver(store)
	a.NewBackOff = fastRetry(2)

	if err := a.Archive(context.Background(), "exports/m1/x.pdf", []byte("x"), "application/pdf"); err == nil {
		t.Fatalf("expected error after retries")
	}
	if store.calls != 3 {
		t.Fatalf("calls: got %d want 3", store.calls)
	}
}
