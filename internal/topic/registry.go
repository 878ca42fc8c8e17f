package topic

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/quizdeck/quizdeck/internal/quiz"
	"github.com/quizdeck/quizdeck/internal/state"
	"github.com/quizdeck/quizdeck/internal/storage"
)

// Registry owns the bundled and user-saved topic sets plus per-group
// completion flags. One instance is constructed at startup and shared;
// a single lock covers all state since callers may be concurrent.
type Registry struct {
	mu        sync.Mutex
	bundledFS fs.FS
	store     storage.TopicStore
	state     state.Store

	bundled    []Entry
	saved      []Entry
	useSaved   bool
	completion map[string]map[int]bool
}

// NewRegistry scans the bundled tree and the saved-topic store, then seeds
// completion state for every discovered group. Files that fail to load are
// dropped with a diagnostic.
func NewRegistry(ctx context.Context, bundledFS fs.FS, store storage.TopicStore, st state.Store, useSaved bool) (*Registry, error) {
	r := &Registry{
		bundledFS: bundledFS,
		store:     store,
		state:     st,
		useSaved:  useSaved,
	}
	r.bundled = scanTopics(bundledFS)
	r.saved = scanTopics(store.FS())

	recorded, err := st.Completions(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading completion state: %w", err)
	}
	r.completion = recorded
	if r.completion == nil {
		r.completion = map[string]map[int]bool{}
	}
	r.seedCompletionLocked()
	return r, nil
}

// scanTopics loads every document with a registered codec extension from the
// top level of fsys, deduplicated by entry equality. Invalid files are
// skipped, not fatal.
func scanTopics(fsys fs.FS) []Entry {
	if fsys == nil {
		return nil
	}
	dirents, err := fs.ReadDir(fsys, ".")
	if err != nil {
		slog.Warn("scanning topic directory", "error", err)
		return nil
	}
	var out []Entry
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		if _, ok := quiz.LookupCodec(filepath.Ext(de.Name())); !ok {
			continue
		}
		e, err := LoadEntry(fsys, de.Name())
		if err != nil {
			slog.Warn("skipping topic file", "file", de.Name(), "error", err)
			continue
		}
		if containsEntry(out, e) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func containsEntry(entries []Entry, e Entry) bool {
	for _, x := range entries {
		if x.Equal(e) {
			return true
		}
	}
	return false
}

// seedCompletionLocked defaults a false flag for every group of every
// discovered topic. Recorded flags are never overwritten.
func (r *Registry) seedCompletionLocked() {
	for _, set := range [][]Entry{r.bundled, r.saved} {
		for _, e := range set {
			if r.completion[e.Name] == nil {
				r.completion[e.Name] = map[int]bool{}
			}
			for gi := range e.Quiz.QuestionGroups {
				if _, ok := r.completion[e.Name][gi]; !ok {
					r.completion[e.Name][gi] = false
				}
			}
		}
	}
}

// SetUseSavedTopics switches which collection CurrentTopics exposes.
func (r *Registry) SetUseSavedTopics(useSaved bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.useSaved = useSaved
}

// CurrentTopics returns the saved set when the registry is in saved mode,
// else the bundled set.
func (r *Registry) CurrentTopics() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.useSaved {
		return copyEntries(r.saved)
	}
	return copyEntries(r.bundled)
}

func (r *Registry) BundledTopics() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyEntries(r.bundled)
}

func (r *Registry) SavedTopics() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyEntries(r.saved)
}

// Topic looks an entry up by name across both collections.
func (r *Registry) Topic(name string) (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, set := range [][]Entry{r.saved, r.bundled} {
		for _, e := range set {
			if e.Name == name {
				return e, true
			}
		}
	}
	return Entry{}, false
}

// ReloadSavedTopics rescans the user-writable store and replaces the saved
// set. Recorded completion flags survive; only missing groups get a false.
func (r *Registry) ReloadSavedTopics(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reloadSavedLocked()
}

func (r *Registry) reloadSavedLocked() {
	r.saved = scanTopics(r.store.FS())
	r.seedCompletionLocked()
}

// Save persists a topic to the user-writable store. An entry equal to an
// existing saved topic is a no-op. A blank name gets a synthesized one from
// the durable counter. Write failures drop the save and are reported.
func (r *Registry) Save(ctx context.Context, e Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if containsEntry(r.saved, e) {
		return nil
	}

	fileName := e.Name
	if fileName == "" {
		n, err := r.state.Counter(ctx)
		if err != nil {
			return fmt.Errorf("reading topic counter: %w", err)
		}
		fileName = fmt.Sprintf("topic-%d%s", n+1, quiz.DefaultExt)
	} else if _, ok := quiz.LookupCodec(filepath.Ext(fileName)); !ok {
		fileName += quiz.DefaultExt
	}

	codec, _ := quiz.LookupCodec(filepath.Ext(fileName))
	data, err := codec.Encode(e.Quiz)
	if err != nil {
		slog.Warn("saving topic", "file", fileName, "error", err)
		return err
	}
	if err := r.store.Put(fileName, data); err != nil {
		slog.Warn("saving topic", "file", fileName, "error", err)
		return err
	}
	if err := r.state.IncrementCounter(ctx); err != nil {
		slog.Warn("bumping topic counter", "error", err)
	}
	r.reloadSavedLocked()
	return nil
}

// QuizFromText decodes and validates a quiz from an in-memory document.
// The returned quiz is normalized; ok is false on any decode or validation
// failure.
func (r *Registry) QuizFromText(content []byte) (quiz.Quiz, bool) {
	codec, _ := quiz.LookupCodec(quiz.DefaultExt)
	z, err := codec.Decode(content)
	if err != nil {
		return quiz.Quiz{}, false
	}
	quiz.Normalize(&z)
	if err := quiz.Validate(&z); err != nil {
		return quiz.Quiz{}, false
	}
	return z, true
}

// Completion returns the per-group flags recorded for a topic.
func (r *Registry) Completion(name string) map[int]bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := map[int]bool{}
	for gi, done := range r.completion[name] {
		out[gi] = done
	}
	return out
}

// Completed reports one flag.
func (r *Registry) Completed(name string, group int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completion[name][group]
}

// SetCompleted records one flag in memory and writes it through to the
// durable store.
func (r *Registry) SetCompleted(ctx context.Context, name string, group int, done bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.completion[name] == nil {
		r.completion[name] = map[int]bool{}
	}
	r.completion[name][group] = done
	return r.state.SetCompletion(ctx, name, group, done)
}

func copyEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
