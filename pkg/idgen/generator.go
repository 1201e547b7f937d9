package idgen

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Generator produces unique identifiers for booking references.
type Generator interface {
	GenerateID() int64
	Reference() string
}

// SnowflakeGenerator implements Generator using Twitter Snowflake IDs.
type SnowflakeGenerator struct {
	node *snowflake.Node
	mu   sync.Mutex
}

// NewSnowflakeGenerator initializes a new ID generator. nodeID must be unique
// per server instance (0-1023) to prevent collisions.
func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}
	return &SnowflakeGenerator{node: node}, nil
}

// GenerateID returns a new unique 64-bit integer ID.
func (g *SnowflakeGenerator) GenerateID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.node.Generate().Int64()
}

// Reference renders a fresh ID as an uppercase base-36 booking reference.
func (g *SnowflakeGenerator) Reference() string {
	return strings.ToUpper(strconv.FormatInt(g.GenerateID(), 36))
}
