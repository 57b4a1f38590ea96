package webhook

import (
	"crypto/hmac"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helioscast/helios/internal/model"
)

type fakeHookSource struct {
	hooks []model.Webhook
}

func (f *fakeHookSource) ActiveWebhooksForEvent(customerID int, event string) ([]model.Webhook, error) {
	return f.hooks, nil
}

func TestEmitDeliversSignedPayload(t *testing.T) {
	var (
		mu        sync.Mutex
		gotBody   []byte
		gotSig    string
		gotEvent  string
		delivered = make(chan struct{})
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		gotBody = body
		gotSig = r.Header.Get("X-Helios-Signature")
		gotEvent = r.Header.Get("X-Helios-Event")
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
		close(delivered)
	}))
	defer srv.Close()

	src := &fakeHookSource{hooks: []model.Webhook{
		{ID: 1, URL: srv.URL, Secret: "hunter2", Events: []string{model.EventScheduleCreated}, IsActive: true},
	}}
	d := NewDispatcher(src)

	d.Emit(1, model.EventScheduleCreated, map[string]int{"schedule_id": 7})

	select {
	case <-delivered:
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was not delivered")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, model.EventScheduleCreated, gotEvent)
	require.NotEmpty(t, gotSig)
	assert.True(t, hmac.Equal([]byte(Sign("hunter2", gotBody)), []byte(gotSig)), "signature verifies against the body")
	assert.Contains(t, string(gotBody), `"schedule_id":7`)
}

func TestEmitNoSubscribersIsNoop(t *testing.T) {
	d := NewDispatcher(&fakeHookSource{})
	// must not panic or block
	d.Emit(1, model.EventContentDeleted, nil)
}
