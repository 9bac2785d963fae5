package topics

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/skand/proctor/internal/exam"
	"github.com/skand/proctor/internal/router"
	"github.com/skand/proctor/internal/screens/playground"
	"github.com/skand/proctor/internal/topic"
)

func testTopics() *TopicsScreen {
	return New(playground.Deps{}, exam.StudentInfo{Name: "Asha Rao", PRN: "PRN42"})
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestCatalogSelectionStartsTest(t *testing.T) {
	s := testTopics()

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected navigation command")
	}

	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected push, got %T", msg)
	}
	if _, ok := push.Screen.(*playground.PlaygroundScreen); !ok {
		t.Errorf("expected session screen, got %T", push.Screen)
	}
}

func TestCustomTopicRequiresName(t *testing.T) {
	s := testTopics()
	s.enterCustom()
	s.focus = focusCustomSubs

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.errMsg == "" {
		t.Error("expected validation message for empty topic name")
	}
	if !s.custom {
		t.Error("expected custom form to stay open")
	}
}

func TestCustomTopicStartsTest(t *testing.T) {
	s := testTopics()
	s.enterCustom()
	s.customName.Focus()
	for _, r := range "Compilers" {
		s.Update(keyPress(r))
	}
	s.focus = focusCustomSubs

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected navigation command")
	}

	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected push, got %T", msg)
	}
	if _, ok := push.Screen.(*playground.PlaygroundScreen); !ok {
		t.Fatalf("expected session screen, got %T", push.Screen)
	}
}

func TestEscapeClosesCustomForm(t *testing.T) {
	s := testTopics()
	s.enterCustom()

	if !s.BlocksEscape() {
		t.Fatal("expected escape kept on-screen while form is open")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})

	if s.custom {
		t.Error("expected custom form closed")
	}
	if s.BlocksEscape() {
		t.Error("expected escape released after form closed")
	}
}

func TestCustomTopicCarriesSubtopics(t *testing.T) {
	tp, ok := topic.NewCustom("Compilers", "parsing, codegen")
	if !ok {
		t.Fatal("expected custom topic accepted")
	}
	if tp.Name != "Compilers" {
		t.Errorf("unexpected name %q", tp.Name)
	}
	if len(tp.Subtopics) != 2 {
		t.Errorf("expected 2 subtopics, got %v", tp.Subtopics)
	}
}
