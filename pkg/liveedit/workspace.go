// Package liveedit manages per-site editable workspaces seeded from
// the last successful build, with an oracle-assisted plan/approve/
// execute chat protocol, workspace audits, and direct edge deploys.
package liveedit

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/metrics-lab/staticpress/ent"
	entbuild "github.com/metrics-lab/staticpress/ent/build"
	"github.com/metrics-lab/staticpress/pkg/deploy"
	"github.com/metrics-lab/staticpress/pkg/events"
	"github.com/metrics-lab/staticpress/pkg/models"
	"github.com/metrics-lab/staticpress/pkg/pipeline"
	"github.com/metrics-lab/staticpress/pkg/services"
)

// maxEditableBytes caps the file size served to and accepted from the
// editor.
const maxEditableBytes = 2 << 20

// Service owns the live-edit workspaces.
type Service struct {
	client   *ent.Client
	dataRoot string
	deployer deploy.Deployer
	bus      *events.Bus
	plans    *planRegistry
	logger   *slog.Logger
}

// NewService creates the live-edit service.
func NewService(client *ent.Client, dataRoot string, deployer deploy.Deployer, bus *events.Bus) *Service {
	return &Service{
		client:   client,
		dataRoot: dataRoot,
		deployer: deployer,
		bus:      bus,
		plans:    newPlanRegistry(),
		logger:   slog.With("component", "liveedit"),
	}
}

// workspaceDir is the editable copy for a site.
func (s *Service) workspaceDir(siteID string) string {
	return filepath.Join(s.dataRoot, "workspaces", siteID)
}

// WorkspaceExists reports whether the site already has a workspace.
func (s *Service) WorkspaceExists(siteID string) bool {
	info, err := os.Stat(s.workspaceDir(siteID))
	return err == nil && info.IsDir()
}

// EnsureWorkspace creates the workspace from the last successful
// build's output if it does not exist yet.
func (s *Service) EnsureWorkspace(ctx context.Context, siteID string) (string, error) {
	dir := s.workspaceDir(siteID)
	if s.WorkspaceExists(siteID) {
		return dir, nil
	}

	last, err := s.client.Build.Query().
		Where(entbuild.SiteIDEQ(siteID), entbuild.StatusEQ(entbuild.StatusSuccess)).
		Order(ent.Desc(entbuild.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", services.NewValidationError("workspace", "site has no successful build to edit")
		}
		return "", fmt.Errorf("failed to find last build: %w", err)
	}

	source := pipeline.NewWorkspace(s.dataRoot, last.ID).Output
	if err := copyTree(source, dir); err != nil {
		// Leave no half-copied workspace behind.
		_ = os.RemoveAll(dir)
		return "", fmt.Errorf("failed to seed workspace from build %s: %w", last.ID, err)
	}
	s.logger.Info("Workspace created", "site_id", siteID, "from_build", last.ID)
	return dir, nil
}

// ListFiles returns the workspace tree, files only, sorted by path.
func (s *Service) ListFiles(ctx context.Context, siteID string) (*models.WorkspaceListResponse, error) {
	dir, err := s.EnsureWorkspace(ctx, siteID)
	if err != nil {
		return nil, err
	}

	var files []models.WorkspaceFile
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, models.WorkspaceFile{
			Path:  filepath.ToSlash(rel),
			Bytes: info.Size(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk workspace: %w", err)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return &models.WorkspaceListResponse{SiteID: siteID, Files: files}, nil
}

// ReadFile returns one workspace file's content.
func (s *Service) ReadFile(ctx context.Context, siteID, relPath string) (*models.WorkspaceFileResponse, error) {
	dir, err := s.EnsureWorkspace(ctx, siteID)
	if err != nil {
		return nil, err
	}
	full, err := resolveInside(dir, relPath)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to stat %s: %w", relPath, err)
	}
	if info.IsDir() {
		return nil, services.NewValidationError("path", "is a directory")
	}
	if info.Size() > maxEditableBytes {
		return nil, services.NewValidationError("path", "file too large to edit")
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", relPath, err)
	}
	return &models.WorkspaceFileResponse{Path: relPath, Content: string(data)}, nil
}

// ApplyEdits writes a set of edits atomically per file (write to temp,
// then rename). Individual failures are reported per edit; successful
// edits stay applied.
func (s *Service) ApplyEdits(ctx context.Context, siteID string, edits []models.FileEdit) []error {
	dir := s.workspaceDir(siteID)
	errs := make([]error, len(edits))
	for i, edit := range edits {
		errs[i] = s.applyEdit(dir, edit)
		if errs[i] == nil {
			s.bus.Publish(events.LiveEditTopic(siteID, ""), events.Event{
				Type: events.TypePatch,
				Payload: events.PatchPayload{
					Path: edit.Path, Summary: edit.Summary, Timestamp: events.Now(),
				},
			})
		}
	}
	return errs
}

func (s *Service) applyEdit(dir string, edit models.FileEdit) error {
	if len(edit.Content) > maxEditableBytes {
		return services.NewValidationError("content", "exceeds the editable size limit")
	}
	full, err := resolveInside(dir, edit.Path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("failed to create parent dir: %w", err)
	}

	tmp := full + ".tmp"
	if err := os.WriteFile(tmp, []byte(edit.Content), 0o644); err != nil {
		return fmt.Errorf("failed to stage edit: %w", err)
	}
	if err := os.Rename(tmp, full); err != nil {
		return fmt.Errorf("failed to apply edit: %w", err)
	}
	return nil
}

// Deploy uploads the workspace to the site's edge project.
func (s *Service) Deploy(ctx context.Context, siteID string) (*models.DeployWorkspaceResponse, error) {
	site, err := s.client.Site.Get(ctx, siteID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load site: %w", err)
	}
	if !s.WorkspaceExists(siteID) {
		return nil, services.NewValidationError("workspace", "no workspace to deploy")
	}

	edgeURL, err := s.deployer.Deploy(ctx, deploy.ProjectName(siteID), s.workspaceDir(siteID), site.SourceURL)
	if err != nil {
		return nil, err
	}
	if err := s.client.Site.UpdateOneID(siteID).SetEdgeURL(edgeURL).Exec(ctx); err != nil {
		s.logger.Warn("Failed to record edge url after workspace deploy", "site_id", siteID, "error", err)
	}

	s.bus.Publish(events.LiveEditTopic(siteID, ""), events.Event{
		Type:    events.TypeDeploy,
		Payload: events.DeployPayload{EdgeURL: edgeURL, Timestamp: events.Now()},
	})
	return &models.DeployWorkspaceResponse{EdgeURL: edgeURL}, nil
}

// resolveInside joins a relative path under root and rejects anything
// that escapes it.
func resolveInside(root, relPath string) (string, error) {
	if relPath == "" {
		return "", services.NewValidationError("path", "must not be empty")
	}
	clean := filepath.Clean(filepath.FromSlash(relPath))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", services.NewValidationError("path", "escapes the workspace")
	}
	return filepath.Join(root, clean), nil
}

// copyTree duplicates a directory tree of regular files.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return err
		}
		out, err := os.Create(target)
		if err != nil {
			return err
		}
		defer out.Close()
		_, err = io.Copy(out, in)
		return err
	})
}
