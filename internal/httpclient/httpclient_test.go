package httpclient

import (
	"net/http"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	c := New(30 * time.Second)
	if c.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", c.Timeout)
	}
	tr, ok := c.Transport.(*http.Transport)
	if !ok {
		t.Fatal("Transport should be *http.Transport")
	}
	if tr.MaxIdleConnsPerHost == 0 {
		t.Error("connection pooling should be configured")
	}
}

func TestNewWithoutTimeout(t *testing.T) {
	if c := New(0); c.Timeout != 0 {
		t.Errorf("Timeout = %v, want none", c.Timeout)
	}
}
