package subtle

import (
	"container/list"
	"errors"
	"math/big"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrPrime indicates that a modulus has no nontrivial factorization, i.e.
// it is prime (or 0/1, which Factorize also rejects). Callers that need to
// distinguish this from a caller-argument mistake should check
// errors.Is(err, ErrPrime).
var ErrPrime = errors.New("subtle: modulus has no nontrivial factorization")

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Factorize splits a composite n into (a, b) such that a*b = n, a >= b >= 2,
// with b as close to sqrt(n) as possible. It iterates candidate divisors
// downward from floor(sqrt(n)) to 2 and returns the first one found; this
// keeps the two Feistel halves balanced.
//
// If n has no such factorization (n is prime, or n < 4), Factorize returns
// ErrPrime. Factorize does not itself enforce the MaxBytes size bound or any
// other argument-level precondition; callers apply those first.
func Factorize(n *big.Int) (a, b *big.Int, err error) {
	d := new(big.Int).Sqrt(n)
	mod := new(big.Int)
	for d.Cmp(two) >= 0 {
		mod.Mod(n, d)
		if mod.Sign() == 0 {
			a := new(big.Int).Div(n, d)
			return a, new(big.Int).Set(d), nil
		}
		d.Sub(d, one)
	}
	return nil, nil, ErrPrime
}

// Cache memoizes Factorize across calls, keyed by the decimal string of n.
// It is bounded to capacity entries (least-recently-used eviction) and is
// safe for concurrent use; concurrent lookups for the same n are coalesced
// so the trial division runs once rather than once per caller.
type Cache struct {
	capacity int

	group singleflight.Group

	mu    sync.Mutex
	ll    *list.List // front = most recently used
	index map[string]*list.Element
}

type cacheEntry struct {
	key  string
	a, b *big.Int
}

// NewCache creates a factorization cache holding at most capacity entries.
// A non-positive capacity disables storage (every lookup still runs through
// the singleflight coalescing, it simply is never retained afterward).
func NewCache(capacity int) *Cache {
	return &Cache{
		capacity: capacity,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Factorize returns the cached factorization of n if present, and otherwise
// computes it with Factorize, storing the result before returning it.
func (c *Cache) Factorize(n *big.Int) (a, b *big.Int, err error) {
	key := n.String()

	if a, b, ok := c.lookup(key); ok {
		return a, b, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		a, b, err := Factorize(n)
		if err != nil {
			return nil, err
		}
		c.store(key, a, b)
		return [2]*big.Int{a, b}, nil
	})
	if err != nil {
		return nil, nil, err
	}
	pair := v.([2]*big.Int)
	return pair[0], pair[1], nil
}

func (c *Cache) lookup(key string) (a, b *big.Int, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, found := c.index[key]
	if !found {
		return nil, nil, false
	}
	c.ll.MoveToFront(el)
	e := el.Value.(*cacheEntry)
	return e.a, e.b, true
}

func (c *Cache) store(key string, a, b *big.Int) {
	if c.capacity <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if el, found := c.index[key]; found {
		c.ll.MoveToFront(el)
		return
	}

	el := c.ll.PushFront(&cacheEntry{key: key, a: a, b: b})
	c.index[key] = el

	for c.ll.Len() > c.capacity {
		oldest := c.ll.Back()
		if oldest == nil {
			break
		}
		c.ll.Remove(oldest)
		delete(c.index, oldest.Value.(*cacheEntry).key)
	}
}
