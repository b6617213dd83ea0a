package mailtest

import (
	"encoding/json"
	"testing"

	"github.com/testfabrik/webmate-go-client/artifact"
)

func TestFromArtifact(t *testing.T) {
	t.Parallel()

	id := artifact.NewID()

	tests := []struct {
		name    string
		a       artifact.Artifact
		wantErr bool
	}{
		{
			name: "mail content",
			a:    mailArtifact(id, "alice@example.com", "Welcome"),
		},
		{
			name: "without email content",
			a: artifact.Artifact{
				Info: artifact.Info{ID: id, TypeName: artifact.TypeMailContent},
				Data: json.RawMessage(`{"from":"bob@example.com","to":[]}`),
			},
		},
		{
			name:    "wrong type",
			a:       artifact.Artifact{Info: artifact.Info{ID: id, TypeName: "Page.Screenshot"}, Data: json.RawMessage(`{}`)},
			wantErr: true,
		},
		{
			name:    "no data",
			a:       artifact.Artifact{Info: artifact.Info{ID: id, TypeName: artifact.TypeMailContent}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := FromArtifact(tt.a)

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got mail %+v", m)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if m.ArtifactID != id || m.From == "" {
				t.Errorf("unexpected mail %+v", m)
			}
		})
	}
}

func TestTestMailAddressWireFormat(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(TestMailAccount{EmailAddress: TestMailAddress{Address: "a@testmails.webmate.io"}})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if string(b) != `{"emailAddress":"a@testmails.webmate.io"}` {
		t.Errorf("unexpected wire format %s", b)
	}
}
