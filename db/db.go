// api/db/db.go
package db

import (
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/folio/api/logging"
)

// NewNeo4jDriver creates the Neo4j driver and verifies connectivity.
// The driver is a process-wide dependency, constructed once in main and
// handed to the DAOs.
func NewNeo4jDriver(uri, username, password string) (neo4j.Driver, error) {
	logger.Info("Connecting to Neo4j at URI", zap.String("uri", uri))
	driver, err := neo4j.NewDriver(
		uri,
		neo4j.BasicAuth(username, password, ""),
		func(c *neo4j.Config) {
			c.MaxConnectionLifetime = 30 * time.Minute
			c.MaxConnectionPoolSize = 50
			c.Log = neo4j.ConsoleLogger(neo4j.ERROR)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(); err != nil {
		return nil, fmt.Errorf("failed to connect to Neo4j: %w", err)
	}

	logger.Info("Successfully connected to Neo4j")
	return driver, nil
}

// CloseNeo4jDriver closes the driver, logging rather than returning the error.
func CloseNeo4jDriver(driver neo4j.Driver) {
	if driver == nil {
		return
	}
	if err := driver.Close(); err != nil {
		logger.Error("Error closing Neo4j connection", zap.Error(err))
	} else {
		logger.Info("Neo4j connection closed successfully")
	}
}
