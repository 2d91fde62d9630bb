package utils

import (
	"net/http/httptest"
	"testing"
)

func TestParseHostNoPort(t *testing.T) {
	tests := map[string]string{
		"":              "",
		"1.2.3.4":       "1.2.3.4",
		"1.2.3.4:8080":  "1.2.3.4",
		"[::1]:443":     "::1",
		"::1":           "::1",
		" 10.0.0.1:80 ": "10.0.0.1",
		"[2001:db8::1]": "2001:db8::1",
	}
	for in, want := range tests {
		if got := ParseHostNoPort(in); got != want {
			t.Errorf("ParseHostNoPort(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		trustProxy bool
		want       string
	}{
		{name: "remote addr", want: "192.0.2.1"},
		{name: "headers ignored without trust", headers: map[string]string{"X-Forwarded-For": "9.9.9.9"}, want: "192.0.2.1"},
		{name: "cloudflare first", headers: map[string]string{"CF-Connecting-IP": "1.1.1.1", "X-Forwarded-For": "2.2.2.2"}, trustProxy: true, want: "1.1.1.1"},
		{name: "left-most forwarded", headers: map[string]string{"X-Forwarded-For": "2.2.2.2, 3.3.3.3"}, trustProxy: true, want: "2.2.2.2"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": "4.4.4.4"}, trustProxy: true, want: "4.4.4.4"},
		{name: "fallback with trust", trustProxy: true, want: "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil) // RemoteAddr 192.0.2.1:1234
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			if got := ClientIP(r, tt.trustProxy); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIPMatcher(t *testing.T) {
	m := NewIPMatcher([]string{"127.0.0.1/32", "10.0.0.0/8", "2001:db8::/32", "192.168.1.7", "garbage", ""})

	tests := map[string]bool{
		"127.0.0.1":       true,
		"10.20.30.40":     true,
		"11.0.0.1":        false,
		"2001:db8::5":     true,
		"192.168.1.7":     true,
		"192.168.1.8":     false,
		"::ffff:10.1.1.1": true,
		"not-an-ip":       false,
	}
	for ip, want := range tests {
		if got := m.Allow(ip); got != want {
			t.Errorf("Allow(%q) = %v, want %v", ip, got, want)
		}
	}

	if !NewIPMatcher(nil).IsEmpty() || !NewIPMatcher([]string{"nope"}).IsEmpty() {
		t.Error("matcher without valid entries should be empty")
	}
}
