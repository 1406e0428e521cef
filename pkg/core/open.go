package core

import (
	"github.com/arthur-debert/resolvr/pkg/handler"
	"github.com/arthur-debert/resolvr/pkg/target"
)

// Dispatch seams, swapped in tests to observe launches without spawning
// processes.
var (
	openHandler   = handler.Open
	launchHandler = handler.Launch
)

type dispatchGroup struct {
	handler handler.Handler
	args    []string
}

// Open resolves every target, then launches each distinct handler once
// with all the targets it claimed. Resolution happens up front so a bad
// argument aborts before anything is launched; a failed launch aborts
// the remaining groups.
func (r *Resolver) Open(rawTargets []string) error {
	var groups []dispatchGroup
	buckets := make(map[uint64][]int)

	for _, raw := range rawTargets {
		t := target.New(raw)
		h, err := r.Resolve(t)
		if err != nil {
			return err
		}

		key := handler.Hash(h)
		idx := -1
		for _, i := range buckets[key] {
			if handler.Equal(groups[i].handler, h) {
				idx = i
				break
			}
		}
		if idx == -1 {
			groups = append(groups, dispatchGroup{handler: h})
			idx = len(groups) - 1
			buckets[key] = append(buckets[key], idx)
		}
		groups[idx].args = append(groups[idx].args, t.String())
	}

	for _, g := range groups {
		r.logger.Debug().
			Int("targets", len(g.args)).
			Msg("Dispatching handler group")
		if err := openHandler(g.handler, r.cfg, g.args); err != nil {
			return err
		}
	}
	return nil
}

// Launch starts a named application directly, passing args through in a
// single invocation instead of splitting them into per-target runs. The
// name is validated against the entry registry before anything runs.
func (r *Resolver) Launch(name string, args []string) error {
	h, err := handler.NewNamed(name)
	if err != nil {
		return err
	}
	return launchHandler(h, r.cfg, args)
}
