// Package schema provides JSON schema validation for devtask configuration files.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/rauta/devtask/schema"
)

var (
	tasksSchema *jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
)

// compileSchemas compiles all embedded schemas once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		tasksData, err := schemafs.FS.ReadFile("tasks.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read tasks schema: %w", err)
			return
		}

		tasksDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(tasksData))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal tasks schema: %w", err)
			return
		}

		if err := compiler.AddResource("tasks.schema.json", tasksDoc); err != nil {
			compileErr = fmt.Errorf("add tasks schema resource: %w", err)
			return
		}

		tasksSchema, err = compiler.Compile("tasks.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile tasks schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateTasks validates JSON data against the tasks schema.
func ValidateTasks(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := tasksSchema.Validate(v); err != nil {
		return fmt.Errorf("tasks validation failed: %w", err)
	}

	return nil
}
