package welcome

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/skand/proctor/internal/router"
	"github.com/skand/proctor/internal/screens/history"
	"github.com/skand/proctor/internal/screens/playground"
	"github.com/skand/proctor/internal/screens/topics"
	"github.com/skand/proctor/internal/store"
)

// stubSnapshotRepo implements store.SnapshotRepo for testing.
type stubSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (r *stubSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	r.snapshots = append(r.snapshots, snap)
	return nil
}
func (r *stubSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(r.snapshots) == 0 {
		return nil, nil
	}
	return r.snapshots[len(r.snapshots)-1], nil
}
func (r *stubSnapshotRepo) Prune(_ context.Context, _ int) error { return nil }

func testWelcome() (*WelcomeScreen, *stubSnapshotRepo) {
	snaps := &stubSnapshotRepo{}
	return New(playground.Deps{Snapshots: snaps}), snaps
}

func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func TestPrefillFromSnapshot(t *testing.T) {
	w, snaps := testWelcome()
	snaps.snapshots = append(snaps.snapshots, &store.Snapshot{
		Data: store.SnapshotData{
			Version:     1,
			LastStudent: &store.StudentData{Name: "Asha Rao", PRN: "PRN42"},
		},
	})

	msg := w.loadPrefill()()
	w.Update(msg)

	if w.name.Value() != "Asha Rao" {
		t.Errorf("expected prefilled name, got %q", w.name.Value())
	}
	if w.prn.Value() != "PRN42" {
		t.Errorf("expected prefilled PRN, got %q", w.prn.Value())
	}
}

func TestSubmitRequiresBothFields(t *testing.T) {
	w, snaps := testWelcome()
	w.name.SetValue("Asha Rao")
	w.focus = focusPRN

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if w.errMsg == "" {
		t.Error("expected validation message for missing PRN")
	}
	for _, m := range collectMsgs(cmd) {
		if _, ok := m.(router.PushScreenMsg); ok {
			t.Fatal("expected no navigation on invalid submit")
		}
	}
	if len(snaps.snapshots) != 0 {
		t.Error("expected no snapshot saved on invalid submit")
	}
}

func TestEnterOnNameMovesToPRN(t *testing.T) {
	w, _ := testWelcome()

	w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if w.focus != focusPRN {
		t.Errorf("expected focus on PRN, got %d", w.focus)
	}
}

func TestSubmitPushesTopicSelection(t *testing.T) {
	w, snaps := testWelcome()
	w.name.SetValue("Asha Rao")
	w.prn.SetValue("PRN42")
	w.focus = focusPRN

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	var pushed bool
	for _, m := range collectMsgs(cmd) {
		push, ok := m.(router.PushScreenMsg)
		if !ok {
			continue
		}
		pushed = true
		if _, ok := push.Screen.(*topics.TopicsScreen); !ok {
			t.Errorf("expected topic selection screen, got %T", push.Screen)
		}
	}
	if !pushed {
		t.Fatal("expected navigation to topic selection")
	}

	if len(snaps.snapshots) != 1 {
		t.Fatalf("expected one snapshot saved, got %d", len(snaps.snapshots))
	}
	saved := snaps.snapshots[0].Data.LastStudent
	if saved == nil || saved.Name != "Asha Rao" || saved.PRN != "PRN42" {
		t.Errorf("unexpected persisted student: %+v", saved)
	}
}

func TestHistoryShortcut(t *testing.T) {
	w, _ := testWelcome()

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyF2})

	msgs := collectMsgs(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	push, ok := msgs[0].(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected push, got %T", msgs[0])
	}
	if _, ok := push.Screen.(*history.HistoryScreen); !ok {
		t.Errorf("expected history screen, got %T", push.Screen)
	}
}
