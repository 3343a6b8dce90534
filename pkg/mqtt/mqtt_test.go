package mqtt

import "testing"

func TestTopicMatch(t *testing.T) {
	tests := []struct {
		pattern string
		topic   string
		want    bool
	}{
		{"pancyguard/request/stats", "pancyguard/request/stats", true},
		{"pancyguard/request/stats", "pancyguard/request/other", false},
		{"pancyguard/request/+", "pancyguard/request/stats", true},
		{"pancyguard/+/stats", "pancyguard/request/stats", true},
		{"pancyguard/request/+", "pancyguard/request/stats/extra", false},
		{"pancyguard/#", "pancyguard/request/stats", true},
		{"pancyguard/#", "pancyguard", true},
		{"#", "anything/at/all", true},
		{"pancyguard/request", "pancyguard/request/stats", false},
		{"pancyguard/request/stats", "pancyguard/request", false},
	}

	for _, tt := range tests {
		if got := topicMatch(tt.pattern, tt.topic); got != tt.want {
			t.Errorf("topicMatch(%q, %q) = %v, want %v", tt.pattern, tt.topic, got, tt.want)
		}
	}
}
