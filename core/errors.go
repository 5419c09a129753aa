// SPDX-License-Identifier: MIT
// File: errors.go
// Role: Sentinel error set for core.Graph.
// Policy:
//   - Only precondition failures (a referenced node is missing) are errors.
//   - "Nothing to do" outcomes (already present, already absent, label collision)
//     are reported as a plain false, never as an error.
//   - Operations attach call context with pkg/errors; callers branch with errors.Is.

package core

import "github.com/pkg/errors"

var (
	// ErrNodeNotFound indicates ReplaceNode or MergeReplaceNode referenced a
	// label that is not in the node registry.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEndpointNotFound indicates an edge operation or query referenced a
	// source or destination label that is not in the node registry.
	ErrEndpointNotFound = errors.New("core: endpoint not found")
)

// Call-site messages attached in front of the sentinels. They name the public
// method so a failure read from a log points at the offending call.
const (
	msgInsertEdge   = "core: cannot call InsertEdge when either src or dst node does not exist"
	msgEraseEdge    = "core: cannot call EraseEdge on src or dst if they don't exist in the graph"
	msgReplaceNode  = "core: cannot call ReplaceNode on a node that doesn't exist"
	msgMergeReplace = "core: cannot call MergeReplaceNode on old or new data if they don't exist in the graph"
	msgIsConnected  = "core: cannot call IsConnected if src or dst node don't exist in the graph"
	msgWeights      = "core: cannot call Weights if src or dst node don't exist in the graph"
	msgConnections  = "core: cannot call Connections if src doesn't exist in the graph"
)
