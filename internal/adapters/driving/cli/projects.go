package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vquery/vquery-cli/internal/core/domain"
)

var projectsJSON bool

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage indexed video projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE:  runProjectsList,
}

var projectsShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsShow,
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a project and its index",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsDelete,
}

func init() {
	projectsCmd.PersistentFlags().BoolVar(&projectsJSON, "json", false, "output as JSON")
	projectsCmd.AddCommand(projectsListCmd)
	projectsCmd.AddCommand(projectsShowCmd)
	projectsCmd.AddCommand(projectsDeleteCmd)
	rootCmd.AddCommand(projectsCmd)
}

func runProjectsList(cmd *cobra.Command, _ []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	projects, err := projectService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing projects: %w", err)
	}

	if projectsJSON {
		return outputJSON(cmd, projects)
	}

	if len(projects) == 0 {
		cmd.Println("No projects. Index a video with: vquery index <url|file>")
		return nil
	}

	cmd.Printf("%-12s %-12s %-24s %s\n", "ID", "STATUS", "CREATED", "NAME")
	for _, p := range projects {
		cmd.Printf("%-12s %-12s %-24s %s\n", p.ID, p.Status, p.CreatedAt, p.Name)
	}
	return nil
}

func runProjectsShow(cmd *cobra.Command, args []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	project, err := projectService.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("project %s not found", args[0])
		}
		return fmt.Errorf("fetching project: %w", err)
	}

	if projectsJSON {
		return outputJSON(cmd, project)
	}

	cmd.Printf("ID:      %s\n", project.ID)
	cmd.Printf("Name:    %s\n", project.Name)
	cmd.Printf("Status:  %s\n", project.Status)
	cmd.Printf("Created: %s\n", project.CreatedAt)
	if project.Source != "" {
		cmd.Printf("Source:  %s\n", project.Source)
	}
	return nil
}

func runProjectsDelete(cmd *cobra.Command, args []string) error {
	if projectService == nil {
		return errors.New("project service not configured")
	}

	if err := projectService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	cmd.Printf("Project %s deleted.\n", args[0])
	return nil
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
