package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/dsrlabs/nbgen/pkg/core"
)

type planSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits nbgen plan events.
// It lets host applications fold plan changes into their own lifecycle
// supervision alongside other event sources.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &planSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *planSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *planSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// core.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
