package store

// pendingOp is a single queued write. A delete carries no value.
type pendingOp struct {
	key    []byte
	value  []byte
	delete bool
}

func (o pendingOp) apply(out SetDeleter) error {
	if o.delete {
		return out.Delete(o.key)
	}
	return out.Set(o.key, o.value)
}

// MemBatch queues writes and applies them in order on Write. A failed
// Write may leave the output partially updated, so only use it over
// in-memory stores or a working tree that is persisted separately.
type MemBatch struct {
	out SetDeleter
	ops []pendingOp
}

var _ Batch = (*MemBatch)(nil)

// NewMemBatch returns an empty batch writing to out.
func NewMemBatch(out SetDeleter) *MemBatch {
	return &MemBatch{out: out}
}

func (b *MemBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, pendingOp{key: key, value: value})
	return nil
}

func (b *MemBatch) Delete(key []byte) error {
	b.ops = append(b.ops, pendingOp{key: key, delete: true})
	return nil
}

// Write flushes all queued operations and empties the batch.
func (b *MemBatch) Write() error {
	for _, op := range b.ops {
		if err := op.apply(b.out); err != nil {
			return err
		}
	}
	b.ops = nil
	return nil
}

// Len returns the number of operations waiting for Write.
func (b *MemBatch) Len() int {
	return len(b.ops)
}

// nullStore holds nothing and drops all writes. It is the bottom layer
// of MemStore.
type nullStore struct{}

func (nullStore) Get([]byte) ([]byte, error) { return nil, nil }
func (nullStore) Has([]byte) (bool, error)   { return false, nil }
func (nullStore) Set(_, _ []byte) error      { return nil }
func (nullStore) Delete([]byte) error        { return nil }
