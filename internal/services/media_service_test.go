package services

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"
)

func pngHeader(size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: "cover.png",
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}
}

func TestUploadImageWithoutStorageReturnsUpstreamError(t *testing.T) {
	service := NewMediaService(nil, nil, nil)

	_, err := service.UploadImage(context.Background(), nil, pngHeader(1024), UploadInput{Title: "Cover"})
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestUploadVideoWithoutStorageReturnsUpstreamError(t *testing.T) {
	service := NewMediaService(nil, nil, nil)

	header := &multipart.FileHeader{
		Filename: "clip.mp4",
		Size:     2048,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"video/mp4"}},
	}
	_, err := service.UploadVideo(context.Background(), nil, header, UploadInput{Title: "Clip"})
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestUploadImageRejectsWrongMimeType(t *testing.T) {
	service := NewMediaService(nil, nil, nil)

	header := &multipart.FileHeader{
		Filename: "notes.txt",
		Size:     64,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"text/plain"}},
	}
	_, err := service.UploadImage(context.Background(), nil, header, UploadInput{Title: "Notes"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUploadImageRejectsOversizedFile(t *testing.T) {
	service := NewMediaService(nil, nil, nil)

	_, err := service.UploadImage(context.Background(), nil, pngHeader(maxUploadBytes+1), UploadInput{Title: "Huge"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestObjectNameKeepsExtension(t *testing.T) {
	name := objectName("My Photo.JPG")
	if len(name) <= len(".jpg") {
		t.Fatalf("expected generated name, got %q", name)
	}
	if got := name[len(name)-4:]; got != ".jpg" {
		t.Fatalf("expected lowercased extension, got %q", got)
	}
}
