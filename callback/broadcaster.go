// Package callback relays externally delivered OAuth callback URLs to the
// sign-in attempts waiting on them.
package callback

import (
	"net/url"
	"sync"

	"github.com/pkg/errors"
)

// Filter decides whether a published URL belongs to a subscriber.
type Filter func(*url.URL) bool

type subscriber struct {
	filter Filter
	urls   chan *url.URL
}

// Broadcaster is the process-wide rendezvous between platform callback
// handlers and pending browser sign-ins. Publish is safe from any goroutine;
// each subscriber receives at most one matching URL, and only URLs published
// after it subscribed. The broadcaster imposes no timeout on pending
// subscriptions; callers bound the wait themselves and cancel.
type Broadcaster struct {
	mu     sync.Mutex
	subs   map[uint64]*subscriber
	nextID uint64
	last   *url.URL
}

// NewBroadcaster creates an empty broadcaster. One instance is created at
// startup and handed to every consumer; there is nothing to tear down.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: map[uint64]*subscriber{}}
}

// Publish records u as the most recent callback and delivers it to every
// current subscriber whose filter matches. Matched subscribers are removed:
// a subscription is single-shot.
func (b *Broadcaster) Publish(u *url.URL) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.last = u
	for id, sub := range b.subs {
		if !sub.filter(u) {
			continue
		}
		// cap-1 channel and the subscriber is removed right here, so this
		// send cannot block
		sub.urls <- u
		delete(b.subs, id)
	}
}

// PublishString parses raw and publishes it. Intended for platform callback
// handlers that receive the URL as text.
func (b *Broadcaster) PublishString(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return errors.Wrap(err, "[Broadcaster.PublishString] parse callback URL")
	}
	b.Publish(u)
	return nil
}

// Subscribe registers a filter and returns the delivery channel plus a cancel
// function that releases the subscription. The channel receives at most one
// URL; after delivery the subscription is already released and cancel is a
// no-op.
func (b *Broadcaster) Subscribe(filter Filter) (<-chan *url.URL, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	sub := &subscriber{filter: filter, urls: make(chan *url.URL, 1)}
	b.subs[id] = sub

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	}
	return sub.urls, cancel
}

// Last returns the most recently published URL, or nil if none arrived yet.
func (b *Broadcaster) Last() *url.URL {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.last
}

// Pending reports how many subscriptions are currently waiting.
func (b *Broadcaster) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
