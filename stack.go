package pscalc

// MaxStackSize is the capacity of the operand stack.
const MaxStackSize = 100

// Stack is the bounded operand stack of a calculator function run.
// Every operation either succeeds or leaves the stack untouched.
type Stack struct {
	data []float64
}

// NewStack returns a stack seeded with values, values[0] at the bottom.
func NewStack(values ...float64) (*Stack, error) {
	if len(values) > MaxStackSize {
		return nil, &StackOverflowError{len(values)}
	}
	data := make([]float64, len(values), MaxStackSize)
	copy(data, values)
	return &Stack{data}, nil
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int {
	return len(s.data)
}

// Values moves the contents out of the stack, bottom first.
// The stack is empty afterwards.
func (s *Stack) Values() []float64 {
	vs := s.data
	s.data = nil
	return vs
}

// Push appends v on top of the stack.
func (s *Stack) Push(v float64) error {
	if len(s.data) >= MaxStackSize {
		return &StackOverflowError{len(s.data) + 1}
	}
	s.data = append(s.data, v)
	return nil
}

// Pop removes and returns the top value.
func (s *Stack) Pop() (float64, error) {
	if err := s.require(1); err != nil {
		return 0, err
	}
	v := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return v, nil
}

// Copy duplicates the top n values, keeping their order.
func (s *Stack) Copy(n int) error {
	if n < 0 {
		return &StackUnderflowError{n, len(s.data)}
	}
	if err := s.require(n); err != nil {
		return err
	}
	if len(s.data)+n > MaxStackSize {
		return &StackOverflowError{len(s.data) + n}
	}
	s.data = append(s.data, s.data[len(s.data)-n:]...)
	return nil
}

// Index pushes a copy of the value n positions below the top (0 is the top).
func (s *Stack) Index(n int) error {
	if n < 0 {
		return &StackUnderflowError{n, len(s.data)}
	}
	if err := s.require(n + 1); err != nil {
		return err
	}
	return s.Push(s.data[len(s.data)-1-n])
}

// Exch swaps the top two values.
func (s *Stack) Exch() error {
	if err := s.require(2); err != nil {
		return err
	}
	l := len(s.data)
	s.data[l-1], s.data[l-2] = s.data[l-2], s.data[l-1]
	return nil
}

// Roll rotates the top n values by j positions. A positive j moves values
// towards the top, so rolling [a b c] by 3 1 gives [c a b]; a negative j
// rotates the other way.
func (s *Stack) Roll(n, j int) error {
	if n < 0 {
		return &StackUnderflowError{n, len(s.data)}
	}
	if err := s.require(n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	if j %= n; j < 0 {
		j += n
	}
	if j == 0 {
		return nil
	}
	l, r := len(s.data)-n, len(s.data)-1
	c := l + j
	s.reverse(l, r)
	s.reverse(l, c-1)
	s.reverse(c, r)
	return nil
}

func (s *Stack) reverse(i, j int) {
	for ; i < j; i, j = i+1, j-1 {
		s.data[i], s.data[j] = s.data[j], s.data[i]
	}
}

// top returns the top n values without popping them, bottom first.
func (s *Stack) top(n int) []float64 {
	return s.data[len(s.data)-n:]
}

// drop discards n values known to be present.
func (s *Stack) drop(n int) {
	s.data = s.data[:len(s.data)-n]
}

func (s *Stack) require(n int) error {
	if len(s.data) < n {
		return &StackUnderflowError{n, len(s.data)}
	}
	return nil
}
