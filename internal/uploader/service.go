package uploader

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"stlrelay-go/internal/config"
	"stlrelay-go/internal/drive"
)

// DriveAPI is the slice of the drive client the upload pipeline uses.
type DriveAPI interface {
	CreateFolder(ctx context.Context, name, parentID string) (string, error)
	Upload(ctx context.Context, req drive.UploadFile) (string, error)
	ShareWithAnyone(ctx context.Context, fileID string) error
	FileLinks(ctx context.Context, fileID string) (drive.Links, error)
	FolderLink(folderID string) string
}

type Service struct {
	drive  DriveAPI
	config *config.Config
	now    func() time.Time
}

func NewService(driveAPI DriveAPI, config *config.Config) *Service {
	return &Service{
		drive:  driveAPI,
		config: config,
		now:    time.Now,
	}
}

// UploadSingle runs the full pipeline for one file and returns its
// links, or the first error in the pipeline.
func (s *Service) UploadSingle(ctx context.Context, req *UploadRequest) (*UploadResponse, error) {
	folderID := s.destinationFolder(ctx, req.CustomerName)

	result := s.processFile(ctx, folderID, req.FileName, req.FileData)
	if !result.Success {
		return nil, fmt.Errorf("upload failed for %q: %s", req.FileName, result.Error)
	}

	return &UploadResponse{
		Success:      true,
		FileID:       result.FileID,
		FileName:     result.FileName,
		ViewLink:     result.ViewLink,
		DownloadLink: result.DownloadLink,
	}, nil
}

// UploadBatch processes every file of the batch against one shared
// destination folder. Files are fanned out to a bounded worker pool;
// a failure for one file never aborts its siblings, and results keep
// the input order.
func (s *Service) UploadBatch(ctx context.Context, req *BatchUploadRequest) *BatchUploadResponse {
	folderID := s.destinationFolder(ctx, req.CustomerName)

	results := make([]FileResult, len(req.Files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.BatchWorkers)
	for i, file := range req.Files {
		i, file := i, file
		g.Go(func() error {
			// Failures land in the result entry, never in the group.
			results[i] = s.processFile(gctx, folderID, file.FileName, file.FileData)
			return nil
		})
	}
	_ = g.Wait()

	success := true
	for _, result := range results {
		if !result.Success {
			success = false
			break
		}
	}

	return &BatchUploadResponse{
		Success:    success,
		FolderLink: s.drive.FolderLink(folderID),
		Files:      results,
	}
}

// destinationFolder creates the per-request folder under the configured
// parent. Creation failures degrade to the parent folder itself so an
// upload never fails on folder bookkeeping alone.
func (s *Service) destinationFolder(ctx context.Context, customerName string) string {
	name := BuildFolderName(s.now(), customerName)

	folderID, err := s.drive.CreateFolder(ctx, name, s.config.Drive.ParentFolderID)
	if err != nil {
		log.Warn().
			Err(err).
			Str("folder", name).
			Str("parent", s.config.Drive.ParentFolderID).
			Msg("folder creation failed, falling back to parent folder")
		return s.config.Drive.ParentFolderID
	}

	log.Debug().
		Str("folder", name).
		Str("folder_id", folderID).
		Msg("created destination folder")

	return folderID
}

// processFile decodes, uploads, shares, and resolves links for one
// file. The first failing step determines the result's error.
func (s *Service) processFile(ctx context.Context, folderID, fileName, fileData string) FileResult {
	result := FileResult{FileName: fileName}

	content, err := DecodePayload(fileData)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	fileID, err := s.drive.Upload(ctx, drive.UploadFile{
		Name:     fileName,
		FolderID: folderID,
		MimeType: drive.ContentType(fileName),
		Content:  bytes.NewReader(content),
	})
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.FileID = fileID

	log.Info().
		Str("file", fileName).
		Str("file_id", fileID).
		Str("size", humanize.Bytes(uint64(len(content)))).
		Msg("file uploaded")

	if err := s.drive.ShareWithAnyone(ctx, fileID); err != nil {
		result.Error = err.Error()
		return result
	}

	links, err := s.drive.FileLinks(ctx, fileID)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Success = true
	result.ViewLink = links.ViewLink
	result.DownloadLink = links.DownloadLink
	return result
}
