package api_test

import (
	"encoding/json"
	"testing"

	"fleetdispatch/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	doc, err := api.Load(t.Context())
	require.NoError(t, err)

	for _, path := range []string{
		"/api/v1/tasks",
		"/api/v1/tasks/{taskId}",
		"/api/v1/tasks/{taskId}/complete",
		"/api/v1/tasks/robot/{robotId}",
		"/api/v1/tasks/package/{packageId}",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}

	put := doc.Paths.Find("/api/v1/tasks/{taskId}").Put
	require.NotNil(t, put)
	assert.Equal(t, "UpdateTask", put.OperationID)
	require.NotNil(t, put.Security)
}

func TestJSON(t *testing.T) {
	raw, err := api.JSON(t.Context())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])
}
