// cmd/tools/registry-updater/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"platform-finder/pkg/registry"
)

const defaultRegistryPath = "configs/activity-registry.json"

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		help(out)
		return errUsage
	}

	switch args[0] {
	case "list":
		return listCommand(args[1:], out)
	case "validate":
		return validateCommand(args[1:], out)
	case "add":
		return addCommand(args[1:], out)
	case "update":
		return updateCommand(args[1:], out)
	case "help":
		help(out)
		return nil
	default:
		help(out)
		return errUsage
	}
}

func newFlagSet(name string, out io.Writer) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	path := fs.String("path", defaultRegistryPath, "Path to registry file")
	return fs, path
}

func listCommand(args []string, out io.Writer) error {
	fs, path := newFlagSet("list", out)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	reg, err := registry.LoadRegistry(*path)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TASK TYPE\tCATEGORY\tSTATUS\tVERSION\tTIMEOUT\tRETRIES")
	for _, a := range reg.Activities {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
			a.TaskType, a.Category, a.ImplementationStatus, a.Version, a.TimeoutDuration(), a.Retries)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d activities (registry %s, updated %s)\n", len(reg.Activities), reg.Version, reg.LastUpdated)
	return nil
}

func validateCommand(args []string, out io.Writer) error {
	fs, path := newFlagSet("validate", out)
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	reg, err := registry.LoadRegistry(*path)
	if err != nil {
		return err
	}

	problems := reg.Validate()
	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(out, "  - %s\n", p)
		}
		return fmt.Errorf("registry validation failed with %d problem(s)", len(problems))
	}
	fmt.Fprintln(out, "Registry validation passed.")
	return nil
}

func addCommand(args []string, out io.Writer) error {
	fs, path := newFlagSet("add", out)
	id := fs.String("id", "", "Activity ID (e.g., calculate-tco)")
	displayName := fs.String("displayName", "", "Display Name (e.g., Calculate TCO)")
	description := fs.String("description", "", "Description")
	category := fs.String("category", "", "Category (e.g., tco)")
	taskType := fs.String("taskType", "", "Camunda Task Type; defaults to the id")
	version := fs.String("version", "1.0.0", "Version")
	status := fs.String("status", registry.StatusPlanned, "Implementation Status ("+strings.Join(registry.Statuses, ", ")+")")
	timeout := fs.String("timeout", "10s", "Job timeout")
	retries := fs.Int("retries", 3, "Retries")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *id == "" || *displayName == "" || *category == "" {
		fmt.Fprintln(out, "Error: id, displayName and category are required for add.")
		fs.Usage()
		return errUsage
	}
	if *taskType == "" {
		*taskType = *id
	}

	reg, err := registry.LoadRegistry(*path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		reg = &registry.ActivityRegistry{Version: "1.0.0"}
	}
	if _, exists := reg.FindByID(*id); exists {
		return fmt.Errorf("activity with ID %s already exists", *id)
	}

	reg.Activities = append(reg.Activities, registry.Activity{
		ID:                   *id,
		DisplayName:          *displayName,
		Description:          *description,
		Category:             *category,
		Version:              *version,
		TaskType:             *taskType,
		ImplementationStatus: *status,
		InputSchema:          map[string]interface{}{"type": "object"},
		ErrorCodes:           []string{},
		Timeout:              *timeout,
		Retries:              *retries,
		Tags:                 []string{},
	})
	if err := saveValidated(reg, *path); err != nil {
		return err
	}
	fmt.Fprintf(out, "Added activity: %s\n", *id)
	return nil
}

func updateCommand(args []string, out io.Writer) error {
	fs, path := newFlagSet("update", out)
	id := fs.String("id", "", "Activity ID to update")
	field := fs.String("field", "", "Field to update (status, version, timeout, retries, displayName, description)")
	value := fs.String("value", "", "New value for the field")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if *id == "" || *field == "" || *value == "" {
		fmt.Fprintln(out, "Error: id, field, and value are required for update.")
		fs.Usage()
		return errUsage
	}

	reg, err := registry.LoadRegistry(*path)
	if err != nil {
		return err
	}
	activity, ok := reg.FindByID(*id)
	if !ok {
		return fmt.Errorf("activity with ID %s not found", *id)
	}
	if err := setField(activity, *field, *value); err != nil {
		return err
	}
	if err := saveValidated(reg, *path); err != nil {
		return err
	}
	fmt.Fprintf(out, "Updated activity %s, field %s to %s\n", *id, *field, *value)
	return nil
}

func setField(a *registry.Activity, field, value string) error {
	switch field {
	case "status":
		a.ImplementationStatus = value
	case "version":
		a.Version = value
	case "timeout":
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}
		a.Timeout = value
	case "retries":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid retries %q", value)
		}
		a.Retries = n
	case "displayName":
		a.DisplayName = value
	case "description":
		a.Description = value
	default:
		return fmt.Errorf("unsupported field: %s", field)
	}
	return nil
}

// saveValidated refuses to write a registry the worker manager would reject.
func saveValidated(reg *registry.ActivityRegistry, path string) error {
	if problems := reg.Validate(); len(problems) > 0 {
		return fmt.Errorf("refusing to save invalid registry: %s", strings.Join(problems, "; "))
	}
	reg.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	return reg.Save(path)
}

func help(out io.Writer) {
	fmt.Fprintln(out, `Registry Updater Tool

Usage:
  registry-updater <command> [options]

Commands:
  list       Print every activity in the registry
  validate   Check the registry for missing, duplicate or invalid entries
  add        Add a new activity
  update     Update a field of an existing activity

Every command accepts -path (default configs/activity-registry.json).

Examples:
  registry-updater list
  registry-updater add -id=compare-tco -displayName="Compare TCO" -category=tco -status=completed
  registry-updater update -id=calculate-tco -field=timeout -value=15s
  registry-updater validate -path=configs/activity-registry.json`)
}
