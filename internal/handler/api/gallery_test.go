//go:build unit

package api_test

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeFileStore keeps payloads in memory so tests can assert which files
// survived an upload.
type fakeFileStore struct {
	files  map[string][]byte
	nextID int
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{files: map[string][]byte{}}
}

func (f *fakeFileStore) Save(originalName string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.nextID++
	name := fmt.Sprintf("images-%d-%s", f.nextID, originalName)
	f.files[name] = data
	return name, nil
}

func (f *fakeFileStore) Remove(filename string) error {
	delete(f.files, filename)
	return nil
}

func (f *fakeFileStore) URL(filename string) string {
	return "/uploads/gallery/" + filename
}

type GalleryHandlerTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	app      *testApp
}

func (s *GalleryHandlerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.app = newTestApp(s.T(), s.mockCtrl)
}

func (s *GalleryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGalleryHandlerSuite(t *testing.T) {
	suite.Run(t, new(GalleryHandlerTestSuite))
}

type uploadPart struct {
	filename    string
	contentType string
	data        []byte
}

func (s *GalleryHandlerTestSuite) uploadRequest(fields map[string]string, parts []uploadPart) *httptest.ResponseRecorder {
	s.T().Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for key, value := range fields {
		require.NoError(s.T(), w.WriteField(key, value))
	}
	for _, p := range parts {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="images"; filename="%s"`, p.filename))
		header.Set("Content-Type", p.contentType)

		fw, err := w.CreatePart(header)
		require.NoError(s.T(), err)
		_, err = fw.Write(p.data)
		require.NoError(s.T(), err)
	}
	require.NoError(s.T(), w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/gallery/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return s.app.do(s.T(), req, true)
}

func (s *GalleryHandlerTestSuite) TestList() {
	rec := s.app.request(s.T(), http.MethodGet, "/api/gallery", nil, false)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(float64(2), decodeBody(s.T(), rec)["count"])

	rec = s.app.request(s.T(), http.MethodGet, "/api/gallery?category=restaurant", nil, false)
	s.Equal(float64(1), decodeBody(s.T(), rec)["count"])

	rec = s.app.request(s.T(), http.MethodGet, "/api/gallery?category=all", nil, false)
	s.Equal(float64(2), decodeBody(s.T(), rec)["count"])
}

func (s *GalleryHandlerTestSuite) TestUpload() {
	s.Run("valid batch", func() {
		rec := s.uploadRequest(
			map[string]string{"category": "events", "title": "Launch night"},
			[]uploadPart{
				{filename: "stage.jpg", contentType: "image/jpeg", data: []byte("jpeg-bytes")},
				{filename: "crowd.png", contentType: "image/png", data: []byte("png-bytes")},
			},
		)

		s.Equal(http.StatusCreated, rec.Code)

		body := decodeBody(s.T(), rec)
		images := body["data"].([]any)
		s.Len(images, 2)
		s.Equal("Launch night", images[0].(map[string]any)["title"])
		s.Len(s.app.files.files, 2)
	})

	s.Run("one pdf rejects the whole batch", func() {
		before := len(s.app.files.files)

		rec := s.uploadRequest(
			map[string]string{"category": "events"},
			[]uploadPart{
				{filename: "ok.jpg", contentType: "image/jpeg", data: []byte("jpeg-bytes")},
				{filename: "menu.pdf", contentType: "application/pdf", data: []byte("pdf-bytes")},
			},
		)

		s.Equal(http.StatusBadRequest, rec.Code)
		s.Len(s.app.files.files, before)
	})

	s.Run("no files", func() {
		rec := s.uploadRequest(map[string]string{"category": "events"}, nil)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("missing category", func() {
		rec := s.uploadRequest(map[string]string{},
			[]uploadPart{{filename: "a.jpg", contentType: "image/jpeg", data: []byte("x")}})
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("requires auth", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/gallery/upload", nil)
		rec := s.app.do(s.T(), req, false)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *GalleryHandlerTestSuite) TestUpdate() {
	rec := s.app.request(s.T(), http.MethodPut, "/api/gallery/1",
		map[string]any{"title": "Reception area"}, true)

	s.Equal(http.StatusOK, rec.Code)

	data := decodeBody(s.T(), rec)["data"].(map[string]any)
	s.Equal("Reception area", data["title"])
	s.Equal("business-park", data["category"])

	rec = s.app.request(s.T(), http.MethodPut, "/api/gallery/99",
		map[string]any{"title": "x"}, true)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *GalleryHandlerTestSuite) TestDelete() {
	rec := s.app.request(s.T(), http.MethodDelete, "/api/gallery/1", nil, true)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.app.request(s.T(), http.MethodDelete, "/api/gallery/1", nil, true)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.app.request(s.T(), http.MethodGet, "/api/gallery", nil, false)
	s.Equal(float64(1), decodeBody(s.T(), rec)["count"])
}
