package main

import (
	"github.com/spf13/cobra"
)

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative maintenance procedures",
	}

	cmd.AddCommand(deleteProjectCmd())
	cmd.AddCommand(mergeUserCmd())
	cmd.AddCommand(renameProjectCmd())
	cmd.AddCommand(reindexCmd())

	return cmd
}

func deleteProjectCmd() *cobra.Command {
	var envFile string
	var projectID int64

	cmd := &cobra.Command{
		Use:   "delete-project",
		Short: "Delete a project and everything under it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(envFile)
			if err != nil {
				return err
			}
			client, err := newClient(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			return client.Maintenance.DeleteProject(cmd.Context(), projectID)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().Int64Var(&projectID, "project-id", 0, "Project to delete")
	_ = cmd.MarkFlagRequired("project-id")
	return cmd
}

func mergeUserCmd() *cobra.Command {
	var envFile string
	var srcID, dstID int64

	cmd := &cobra.Command{
		Use:   "merge-user",
		Short: "Merge one user into another and delete the source",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(envFile)
			if err != nil {
				return err
			}
			client, err := newClient(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			return client.Maintenance.MergeUser(cmd.Context(), srcID, dstID)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().Int64Var(&srcID, "src", 0, "User to merge away")
	cmd.Flags().Int64Var(&dstID, "dst", 0, "User to merge into")
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("dst")
	return cmd
}

func renameProjectCmd() *cobra.Command {
	var envFile string
	var projectID int64
	var newName string

	cmd := &cobra.Command{
		Use:   "rename-project",
		Short: "Rename a project, recomputing its slug",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(envFile)
			if err != nil {
				return err
			}
			client, err := newClient(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			return client.Maintenance.RenameProject(cmd.Context(), projectID, newName)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().Int64Var(&projectID, "project-id", 0, "Project to rename")
	cmd.Flags().StringVar(&newName, "name", "", "New project name")
	_ = cmd.MarkFlagRequired("project-id")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func reindexCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the full-text search index",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(envFile)
			if err != nil {
				return err
			}
			client, err := newClient(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			return client.Maintenance.Reindex(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	return cmd
}
