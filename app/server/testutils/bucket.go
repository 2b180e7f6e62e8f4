package testutils

import (
	"context"
	"fmt"
	"sync"

	"pokedex-api/app/server/images"
)

type MemoryBucket struct {
	mu      sync.Mutex
	objects map[string][]byte

	Err error // 非 nil 时所有上传都失败
}

var _ images.Bucket = (*MemoryBucket)(nil)

func NewMemoryBucket() *MemoryBucket {
	return &MemoryBucket{objects: map[string][]byte{}}
}

func (b *MemoryBucket) Upload(_ context.Context, name string, data []byte, _ string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.Err != nil {
		return b.Err
	}
	if _, ok := b.objects[name]; ok {
		return fmt.Errorf("%w: %s", images.ErrObjectExists, name)
	}

	b.objects[name] = append([]byte(nil), data...)
	return nil
}

func (b *MemoryBucket) PublicURL(name string) string {
	return "https://storage.test/public/pokemon/" + name
}

func (b *MemoryBucket) Object(name string) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, ok := b.objects[name]
	return data, ok
}

func (b *MemoryBucket) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.objects)
}
