package packagemgmt

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	webmate "github.com/testfabrik/webmate-go-client"
	"github.com/testfabrik/webmate-go-client/blob"
	"github.com/testfabrik/webmate-go-client/internal/webmatetest"
)

func packageJSON(p Package) string {
	return `{"id":"` + p.ID.String() + `","projectId":"` + p.ProjectID.String() +
		`","blobId":"` + p.BlobID.String() + `","name":"` + p.Name +
		`","extension":"` + p.Extension + `","version":7,"uploadedBy":"someone"}`
}

func TestCreatePackage(t *testing.T) {
	t.Parallel()

	want := Package{
		ID:        NewPackageID(),
		ProjectID: webmate.NewProjectID(),
		BlobID:    blob.NewID(),
		Name:      "shop-app",
		Extension: "apk",
	}

	var method, path string
	var sent map[string]string
	transport := webmatetest.NewClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &sent)
		webmatetest.JSON(w, http.StatusCreated, packageJSON(want))
	})

	got, err := NewClient(transport, nil).CreatePackage(context.Background(), want.ProjectID, want.BlobID, want.Name, want.Extension)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("package mismatch (-want +got):\n%s", diff)
	}

	if method != http.MethodPost || path != "/projects/"+want.ProjectID.String()+"/packages" {
		t.Errorf("unexpected request %s %s", method, path)
	}

	wantBody := map[string]string{"blobId": want.BlobID.String(), "name": "shop-app", "extension": "apk"}
	if diff := cmp.Diff(wantBody, sent); diff != "" {
		t.Errorf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestCreatePackage_OmitsEmptyFields(t *testing.T) {
	t.Parallel()

	var sent map[string]any
	transport := webmatetest.NewClient(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &sent)
		webmatetest.JSON(w, http.StatusOK, packageJSON(Package{ID: NewPackageID(), Name: "n"}))
	})

	_, err := NewClient(transport, nil).CreatePackage(context.Background(), webmate.NewProjectID(), blob.NewID(), "n", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := sent["extension"]; ok {
		t.Errorf("expected extension to be omitted, got %v", sent)
	}
}

func TestGetPackage(t *testing.T) {
	t.Parallel()

	want := Package{
		ID:        NewPackageID(),
		ProjectID: webmate.NewProjectID(),
		BlobID:    blob.NewID(),
		Name:      "shop-app",
		Extension: "ipa",
	}

	var path string
	transport := webmatetest.NewClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		webmatetest.JSON(w, http.StatusOK, packageJSON(want))
	})

	got, err := NewClient(transport, nil).GetPackage(context.Background(), want.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if path != "/package/packages/"+want.ID.String() {
		t.Errorf("unexpected path %s", path)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("package mismatch (-want +got):\n%s", diff)
	}
}

func TestGetPackage_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		status  int
		wantErr error
	}{
		{"missing id", `{"name":"shop-app"}`, http.StatusOK, webmate.ErrMalformedResponse},
		{"missing name", `{"id":"` + NewPackageID().String() + `"}`, http.StatusOK, webmate.ErrMalformedResponse},
		{"not json", `<html></html>`, http.StatusOK, webmate.ErrMalformedResponse},
		{"not found", `{"error":"package not found"}`, http.StatusNotFound, webmate.ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			transport := webmatetest.NewClient(t, func(w http.ResponseWriter, _ *http.Request) {
				webmatetest.JSON(w, tt.status, tt.body)
			})

			got, err := NewClient(transport, nil).GetPackage(context.Background(), NewPackageID())

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}

			if got != (Package{}) {
				t.Errorf("expected zero package, got %+v", got)
			}
		})
	}
}

func TestGetPackage_NoResponse(t *testing.T) {
	t.Parallel()

	_, err := NewClient(webmatetest.NewDeadClient(t), nil).GetPackage(context.Background(), NewPackageID())

	if !errors.Is(err, webmate.ErrNoResponse) {
		t.Fatalf("expected ErrNoResponse, got %v", err)
	}

	if !strings.Contains(err.Error(), "could not get package") {
		t.Errorf("unexpected error: %v", err)
	}
}

type fakeBlobStore struct {
	id          blob.ID
	err         error
	calls       int
	data        []byte
	contentType string
	projectID   webmate.ProjectID
}

func (f *fakeBlobStore) PutBlob(_ context.Context, projectID webmate.ProjectID, data []byte, contentType string) (blob.ID, error) {
	f.calls++
	f.projectID = projectID
	f.data = data
	f.contentType = contentType
	return f.id, f.err
}

func TestUploadApplicationPackage(t *testing.T) {
	t.Parallel()

	projectID := webmate.NewProjectID()
	blobs := &fakeBlobStore{id: blob.NewID()}
	packageID := NewPackageID()

	var sent map[string]string
	transport := webmatetest.NewClient(t, func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &sent)
		webmatetest.JSON(w, http.StatusOK, packageJSON(Package{
			ID:        packageID,
			ProjectID: projectID,
			BlobID:    blobs.id,
			Name:      sent["name"],
			Extension: sent["extension"],
		}))
	})

	payload := []byte("PK\x03\x04apk-bytes")
	got, err := NewClient(transport, blobs).UploadApplicationPackage(context.Background(), projectID, payload, "shop-app", "apk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if blobs.calls != 1 || blobs.projectID != projectID || string(blobs.data) != string(payload) {
		t.Errorf("unexpected blob upload: %+v", blobs)
	}

	if blobs.contentType != AndroidPackageContentType {
		t.Errorf("expected content type %s, got %s", AndroidPackageContentType, blobs.contentType)
	}

	wantBody := map[string]string{"blobId": blobs.id.String(), "name": "shop-app", "extension": "apk"}
	if diff := cmp.Diff(wantBody, sent); diff != "" {
		t.Errorf("create request mismatch (-want +got):\n%s", diff)
	}

	want := Package{ID: packageID, ProjectID: projectID, BlobID: blobs.id, Name: "shop-app", Extension: "apk"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("package mismatch (-want +got):\n%s", diff)
	}
}

func TestUploadApplicationPackage_BlobFailureSkipsCreate(t *testing.T) {
	t.Parallel()

	created := false
	transport := webmatetest.NewClient(t, func(w http.ResponseWriter, _ *http.Request) {
		created = true
		webmatetest.JSON(w, http.StatusOK, `{}`)
	})

	blobs := &fakeBlobStore{err: errors.New("quota exceeded")}

	_, err := NewClient(transport, blobs).UploadApplicationPackage(context.Background(), webmate.NewProjectID(), []byte{1}, "app", "ipa")
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected blob error, got %v", err)
	}

	if created {
		t.Error("expected no package to be created")
	}

	if blobs.contentType != IOSAppContentType {
		t.Errorf("expected content type %s, got %s", IOSAppContentType, blobs.contentType)
	}
}

func TestUploadApplicationPackage_CreateFailureLeavesBlob(t *testing.T) {
	t.Parallel()

	transport := webmatetest.NewClient(t, func(w http.ResponseWriter, _ *http.Request) {
		webmatetest.JSON(w, http.StatusInternalServerError, `{"error":"database unavailable"}`)
	})

	blobs := &fakeBlobStore{id: blob.NewID()}

	_, err := NewClient(transport, blobs).UploadApplicationPackage(context.Background(), webmate.NewProjectID(), []byte{1}, "app", "apk")
	if !errors.Is(err, webmate.ErrUnexpectedStatus) {
		t.Fatalf("expected ErrUnexpectedStatus, got %v", err)
	}

	if blobs.calls != 1 {
		t.Errorf("expected exactly one blob upload, got %d", blobs.calls)
	}
}

func TestUploadApplicationPackage_WithBlobClient(t *testing.T) {
	t.Parallel()

	projectID := webmate.NewProjectID()
	blobID := blob.NewID()
	packageID := NewPackageID()

	var blobContentType string
	transport := webmatetest.NewClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/projects/" + projectID.String() + "/blobs":
			blobContentType = r.Header.Get("Content-Type")
			webmatetest.JSON(w, http.StatusOK, `"`+blobID.String()+`"`)
		case "/projects/" + projectID.String() + "/packages":
			webmatetest.JSON(w, http.StatusOK, packageJSON(Package{ID: packageID, ProjectID: projectID, BlobID: blobID, Name: "app", Extension: "apk"}))
		default:
			http.NotFound(w, r)
		}
	})

	got, err := NewClient(transport, nil).UploadApplicationPackage(context.Background(), projectID, []byte("apk"), "app", "apk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if blobContentType != AndroidPackageContentType {
		t.Errorf("expected blob content type %s, got %s", AndroidPackageContentType, blobContentType)
	}

	if got.BlobID != blobID || got.ID != packageID {
		t.Errorf("unexpected package %+v", got)
	}
}
