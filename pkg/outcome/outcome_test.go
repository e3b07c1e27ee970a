package outcome

import "testing"

func TestOutcome_And(t *testing.T) {
	tests := []struct {
		name     string
		left     Outcome
		right    Outcome
		expected bool
	}{
		{"both match", Match(Of("a")), Match(Of("b")), true},
		{"left no match", NoMatch(Of("a")), Match(Of("b")), false},
		{"right no match", Match(Of("a")), NoMatch(Of("b")), false},
		{"both no match", NoMatch(Of("a")), NoMatch(Of("b")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.left.And(tt.right)
			if result.Matched != tt.expected {
				t.Errorf("Expected matched=%v, got %v", tt.expected, result.Matched)
			}
			if result.Message.String() != "a; b" {
				t.Errorf("Expected combined message %q, got %q", "a; b", result.Message.String())
			}
		})
	}
}

func TestOutcome_Or(t *testing.T) {
	tests := []struct {
		name     string
		left     Outcome
		right    Outcome
		expected bool
	}{
		{"both match", Match(Of("a")), Match(Of("b")), true},
		{"left matches", Match(Of("a")), NoMatch(Of("b")), true},
		{"right matches", NoMatch(Of("a")), Match(Of("b")), true},
		{"neither matches", NoMatch(Of("a")), NoMatch(Of("b")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.left.Or(tt.right)
			if result.Matched != tt.expected {
				t.Errorf("Expected matched=%v, got %v", tt.expected, result.Matched)
			}
		})
	}
}

func TestOutcome_And_EmptyMessageContributesNoText(t *testing.T) {
	result := Match(Empty()).And(Match(Of("b matched")))

	if result.Message.String() != "b matched" {
		t.Errorf("Expected %q, got %q", "b matched", result.Message.String())
	}
}

func TestOutcome_String(t *testing.T) {
	if s := Match(Of("found it")).String(); s != "match: found it" {
		t.Errorf("Expected %q, got %q", "match: found it", s)
	}
	if s := NoMatch(Empty()).String(); s != "no match" {
		t.Errorf("Expected %q, got %q", "no match", s)
	}
}
