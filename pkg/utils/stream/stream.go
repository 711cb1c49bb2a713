// Package stream carries parsed documents between pipeline stages.
package stream

type Producer interface {
	Produce() (any, bool)
}

type Consumer interface {
	Consume(v any)
}

// ArrayConsumer buffers everything it consumes for later collection.
type ArrayConsumer[T any] struct {
	items []T
}

func NewArrayConsumer[T any]() *ArrayConsumer[T] {
	return &ArrayConsumer[T]{}
}

func (c *ArrayConsumer[T]) Consume(v any) {
	c.items = append(c.items, v.(T))
}

func (c *ArrayConsumer[T]) Collect() []T {
	return c.items
}

// ArrayProducer replays a slice in order.
type ArrayProducer[T any] struct {
	items []T
}

func NewArrayProducer[T any](items []T) *ArrayProducer[T] {
	return &ArrayProducer[T]{
		items: items,
	}
}

func (p *ArrayProducer[T]) Produce() (any, bool) {
	if len(p.items) == 0 {
		return nil, false
	}
	v := p.items[0]
	p.items = p.items[1:]
	return v, true
}

// ChannelConsumer forwards values into a channel.
type ChannelConsumer[T any] struct {
	ch chan<- T
}

func NewChannelConsumer[T any](ch chan<- T) *ChannelConsumer[T] {
	return &ChannelConsumer[T]{
		ch: ch,
	}
}

func (c *ChannelConsumer[T]) Consume(v any) {
	c.ch <- v.(T)
}

// ChannelProducer drains a channel until it is closed.
type ChannelProducer[T any] struct {
	ch <-chan T
}

func NewChannelProducer[T any](ch <-chan T) *ChannelProducer[T] {
	return &ChannelProducer[T]{
		ch: ch,
	}
}

func (p *ChannelProducer[T]) Produce() (any, bool) {
	if p.ch == nil {
		return nil, false
	}

	v, ok := <-p.ch
	return v, ok
}
