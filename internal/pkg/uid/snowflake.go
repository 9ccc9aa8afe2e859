package uid

import (
	"github.com/bwmarrin/snowflake"
)

// Snowflake generates time-sortable int64 identifiers.
//
// IDs embed a node number, so each running instance must be configured with a
// distinct node to stay collision-free across replicas.
type Snowflake struct {
	node *snowflake.Node
}

// NewSnowflake returns a Snowflake generator for the given node number.
func NewSnowflake(node int64) (*Snowflake, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: n}, nil
}

// Generate returns a new int64 identifier.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
