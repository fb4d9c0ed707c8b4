// cmd/tools/registry-updater/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"readiness-workers/pkg/registry"
)

const defaultRegistryPath = "configs/activity-registry.json"

func main() {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	checkCmd := flag.NewFlagSet("check-input", flag.ExitOnError)

	addPath := addCmd.String("path", defaultRegistryPath, "Path to registry file")
	idAdd := addCmd.String("id", "", "Activity ID (e.g., export-results)")
	displayName := addCmd.String("displayName", "", "Display Name (e.g., Export Results)")
	description := addCmd.String("description", "", "Description")
	category := addCmd.String("category", "", "Category (assessment, persistence, communication)")
	taskType := addCmd.String("taskType", "", "Zeebe task type (defaults to id)")
	version := addCmd.String("version", "1.0.0", "Version")
	implStatus := addCmd.String("status", registry.StatusPlanned, "Implementation Status (planned, in-progress, completed, verified)")
	timeout := addCmd.String("timeout", "10s", "Job timeout")

	updatePath := updateCmd.String("path", defaultRegistryPath, "Path to registry file")
	idUpdate := updateCmd.String("id", "", "Activity ID to update")
	field := updateCmd.String("field", "", "Field to update (status, version, timeout, retries, ...)")
	value := updateCmd.String("value", "", "New value for the field")

	validatePath := validateCmd.String("path", defaultRegistryPath, "Path to registry file")

	checkPath := checkCmd.String("path", defaultRegistryPath, "Path to registry file")
	checkTask := checkCmd.String("taskType", "", "Task type whose input schema to use")
	checkVars := checkCmd.String("vars", "", "Job variables as JSON, or @file to read them from a file")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "add":
		_ = addCmd.Parse(os.Args[2:])
		if *idAdd == "" || *displayName == "" || *category == "" {
			fmt.Println("Error: id, displayName and category are required for add.")
			addCmd.Usage()
			os.Exit(1)
		}
		tt := *taskType
		if tt == "" {
			tt = *idAdd
		}
		err = addActivity(*addPath, registry.Activity{
			ID:                   *idAdd,
			DisplayName:          *displayName,
			Description:          *description,
			Category:             *category,
			Version:              *version,
			TaskType:             tt,
			ImplementationStatus: *implStatus,
			InputSchema:          map[string]interface{}{},
			OutputSchema:         map[string]interface{}{},
			ErrorCodes:           []string{},
			Timeout:              *timeout,
			Workflows:            []string{},
			Tags:                 []string{},
		})
		if err == nil {
			fmt.Printf("Added activity: %s\n", *idAdd)
		}

	case "update":
		_ = updateCmd.Parse(os.Args[2:])
		if *idUpdate == "" || *field == "" || *value == "" {
			fmt.Println("Error: id, field, and value are required for update.")
			updateCmd.Usage()
			os.Exit(1)
		}
		err = updateActivity(*updatePath, *idUpdate, *field, *value)
		if err == nil {
			fmt.Printf("Updated activity %s, field %s to %s\n", *idUpdate, *field, *value)
		}

	case "validate":
		_ = validateCmd.Parse(os.Args[2:])
		var reg *registry.ActivityRegistry
		if reg, err = registry.LoadRegistry(*validatePath); err == nil {
			if err = reg.Validate(); err == nil {
				fmt.Printf("Registry validation passed. Found %d activities.\n", len(reg.Activities))
			}
		}

	case "check-input":
		_ = checkCmd.Parse(os.Args[2:])
		err = checkInput(*checkPath, *checkTask, *checkVars)

	default:
		help()
		return
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func addActivity(path string, activity registry.Activity) error {
	now := time.Now()
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to load registry: %w", err)
		}
		reg = registry.New(now)
	}
	if err := reg.Add(activity, now); err != nil {
		return err
	}
	return reg.Save(path)
}

func updateActivity(path, id, field, value string) error {
	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	if err := reg.Update(id, field, value, time.Now()); err != nil {
		return err
	}
	return reg.Save(path)
}

func checkInput(path, taskType, vars string) error {
	if taskType == "" || vars == "" {
		return fmt.Errorf("taskType and vars are required for check-input")
	}
	if vars[0] == '@' {
		data, err := os.ReadFile(vars[1:])
		if err != nil {
			return err
		}
		vars = string(data)
	}

	reg, err := registry.LoadRegistry(path)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}
	result, err := reg.ValidateInput(taskType, vars)
	if err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("input rejected: %s", result.Summary())
	}
	fmt.Printf("Input is valid for %s.\n", taskType)
	return nil
}

func help() {
	fmt.Println(`
Usage: registry-updater <command> [flags]

Commands:
  add          Add a new activity to the registry
  update       Update an existing activity's field
  validate     Validate the registry file
  check-input  Validate job variables against an activity's input schema
  help         Show this help message

Examples:
  registry-updater add -id export-results -displayName "Export Results" -category persistence
  registry-updater update -id export-results -field status -value completed
  registry-updater validate -path configs/activity-registry.json
  registry-updater check-input -taskType calculate-assessment-results -vars @testdata/assessment.json

Use 'registry-updater <command> -h' for more information about a command.`)
}
