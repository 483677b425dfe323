package ll

import (
	"context"

	"github.com/emirpasic/gods/stacks/arraystack"
	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/llpp"
)

// symStack is the parse stack of grammar symbols.
type symStack struct {
	stack *arraystack.Stack
}

func newSymStack() *symStack {
	return &symStack{stack: arraystack.New()}
}

func (s *symStack) push(sym llpp.Symbol) {
	s.stack.Push(sym)
}

// pushReversed pushes symbols from right to left, leaving the first symbol
// on top.
func (s *symStack) pushReversed(syms []llpp.Symbol) {
	for i := len(syms) - 1; i >= 0; i-- {
		s.stack.Push(syms[i])
	}
}

func (s *symStack) pop() llpp.Symbol {
	x, ok := s.stack.Pop()
	if !ok {
		return llpp.Symbol{}
	}
	return x.(llpp.Symbol)
}

func (s *symStack) top() llpp.Symbol {
	x, ok := s.stack.Peek()
	if !ok {
		return llpp.Symbol{}
	}
	return x.(llpp.Symbol)
}

func (s *symStack) empty() bool {
	return s.stack.Empty()
}

// snapshot returns the stack content, bottom first.
func (s *symStack) snapshot() []llpp.Symbol {
	values := s.stack.Values() // top first
	syms := make([]llpp.Symbol, len(values))
	for i, x := range values {
		syms[len(values)-1-i] = x.(llpp.Symbol)
	}
	return syms
}

// Parse stacks are short-lived objects. To avoid multiple allocation of
// stacks we will pool them.
type stackPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalStackPool *stackPool

func init() {
	globalStackPool = &stackPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return newSymStack(), nil
		})
	globalStackPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalStackPool.opool = pool.NewObjectPool(globalStackPool.ctx, factory, config)
}

// borrowStack returns an empty stack from the pool.
func borrowStack() *symStack {
	o, err := globalStackPool.opool.BorrowObject(globalStackPool.ctx)
	if err != nil {
		tracer().Errorf("cannot borrow parse stack: %v", err)
		return newSymStack()
	}
	return o.(*symStack)
}

// releaseStack clears a stack and puts it back into the pool.
func releaseStack(s *symStack) {
	s.stack.Clear()
	if err := globalStackPool.opool.ReturnObject(globalStackPool.ctx, s); err != nil {
		tracer().Errorf("cannot return parse stack to pool: %v", err)
	}
}
