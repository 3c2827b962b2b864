package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ludolib/ludolib"
	"github.com/ludolib/ludolib/application/service"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Fixture file format. Users seed first; projects reference owners by
// username.
type fixtures struct {
	Users    []fixtureUser    `yaml:"users"`
	Projects []fixtureProject `yaml:"projects"`
}

type fixtureUser struct {
	Username string `yaml:"username"`
}

type fixtureProject struct {
	Name        string           `yaml:"name"`
	Owner       string           `yaml:"owner"`
	Description string           `yaml:"description"`
	Game        fixtureGame      `yaml:"game"`
	Readme      string           `yaml:"readme"`
	Tags        []string         `yaml:"tags"`
	Packages    []fixturePackage `yaml:"packages"`
	Gallery     []fixtureImage   `yaml:"gallery"`
}

type fixtureGame struct {
	Title      string `yaml:"title"`
	TitleSort  string `yaml:"title_sort"`
	Publisher  string `yaml:"publisher"`
	Year       string `yaml:"year"`
	PlayersMin *int64 `yaml:"players_min"`
	PlayersMax *int64 `yaml:"players_max"`
	LengthMin  *int64 `yaml:"length_min"`
	LengthMax  *int64 `yaml:"length_max"`
}

type fixturePackage struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Releases    []fixtureRelease `yaml:"releases"`
}

type fixtureRelease struct {
	Version string        `yaml:"version"`
	URL     string        `yaml:"url"`
	Files   []fixtureFile `yaml:"files"`
}

type fixtureFile struct {
	Filename    string `yaml:"filename"`
	URL         string `yaml:"url"`
	Size        int64  `yaml:"size"`
	Checksum    string `yaml:"checksum"`
	Requires    string `yaml:"requires"`
	ContentType string `yaml:"content_type"`
}

type fixtureImage struct {
	Filename    string `yaml:"filename"`
	URL         string `yaml:"url"`
	ContentType string `yaml:"content_type"`
}

const seedParallelism = 4

func seedCmd() *cobra.Command {
	var envFile string
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load fixtures from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(envFile)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read fixtures: %w", err)
			}
			var fx fixtures
			if err := yaml.Unmarshal(raw, &fx); err != nil {
				return fmt.Errorf("parse fixtures: %w", err)
			}

			client, err := newClient(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			return seed(cmd.Context(), client, fx)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&file, "file", "fixtures.yaml", "Fixture file to load")
	return cmd
}

func seed(ctx context.Context, client *ludolib.Client, fx fixtures) error {
	// Users first: projects reference them by username.
	userIDs := make(map[string]int64, len(fx.Users))
	for _, u := range fx.Users {
		user, err := client.Identity.Register(ctx, u.Username)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		}
		userIDs[u.Username] = user.ID()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(seedParallelism)
	for _, p := range fx.Projects {
		p := p
		g.Go(func() error {
			if err := seedProject(ctx, client, userIDs, p); err != nil {
				return fmt.Errorf("seed project %s: %w", p.Name, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func seedProject(ctx context.Context, client *ludolib.Client, userIDs map[string]int64, p fixtureProject) error {
	ownerID, ok := userIDs[p.Owner]
	if !ok {
		return fmt.Errorf("unknown owner %q", p.Owner)
	}

	project, err := client.Catalog.Create(ctx, service.ProjectCreateParams{
		OwnerID:       ownerID,
		Name:          p.Name,
		Description:   p.Description,
		GameTitle:     p.Game.Title,
		GameTitleSort: p.Game.TitleSort,
		GamePublisher: p.Game.Publisher,
		GameYear:      p.Game.Year,
		PlayersMin:    p.Game.PlayersMin,
		PlayersMax:    p.Game.PlayersMax,
		LengthMin:     p.Game.LengthMin,
		LengthMax:     p.Game.LengthMax,
		Readme:        p.Readme,
	})
	if err != nil {
		return err
	}

	for _, tag := range p.Tags {
		if err := client.Catalog.AddTag(ctx, project.ID(), tag); err != nil {
			return err
		}
	}

	for _, pkg := range p.Packages {
		created, err := client.Registry.CreatePackage(ctx, service.PackageCreateParams{
			ProjectID:   project.ID(),
			UserID:      ownerID,
			Name:        pkg.Name,
			Description: pkg.Description,
		})
		if err != nil {
			return err
		}

		for _, rel := range pkg.Releases {
			release, err := client.Registry.PublishRelease(ctx, service.ReleasePublishParams{
				PackageID: created.ID(),
				UserID:    ownerID,
				Version:   rel.Version,
				URL:       rel.URL,
			})
			if err != nil {
				return err
			}

			for _, f := range rel.Files {
				_, err := client.Registry.AddFile(ctx, service.FileAddParams{
					ReleaseID:   release.ID(),
					UserID:      ownerID,
					Filename:    f.Filename,
					URL:         f.URL,
					Size:        f.Size,
					Checksum:    f.Checksum,
					Requires:    f.Requires,
					ContentType: f.ContentType,
				})
				if err != nil {
					return err
				}
			}
		}
	}

	for _, img := range p.Gallery {
		_, err := client.Media.AddGalleryImage(ctx, service.ImageAddParams{
			ProjectID:   project.ID(),
			UserID:      ownerID,
			Filename:    img.Filename,
			URL:         img.URL,
			ContentType: img.ContentType,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
