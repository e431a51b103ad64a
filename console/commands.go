package console

import (
	stderrors "errors"

	"github.com/katalvlaran/dynmst/core"
	"github.com/katalvlaran/dynmst/prim_kruskal"
	"go.uber.org/zap"
)

// AddEdge inserts (u, v, weight) and prints the outcome.
func (s *Session) AddEdge(u, v int, weight int64) {
	if err := s.graph.AddEdge(u, v, weight); err != nil {
		s.logger.Warn("add edge rejected",
			zap.Int("u", u), zap.Int("v", v), zap.Int64("weight", weight), zap.Error(err))
		s.printf("Error: %v\n", err)
		return
	}
	s.logger.Debug("edge added",
		zap.Int("u", u), zap.Int("v", v), zap.Int64("weight", weight),
		zap.Int("edges", s.graph.EdgeCount()), zap.Int("nodes", s.graph.NodeCount()))
	s.printf("Edge %d -- %d (weight: %d) added.\n", u, v, weight)
}

// RemoveEdge deletes the first (u, v) edge and prints the outcome.
func (s *Session) RemoveEdge(u, v int) {
	err := s.graph.RemoveEdge(u, v)
	switch {
	case err == nil:
		s.logger.Debug("edge removed", zap.Int("u", u), zap.Int("v", v), zap.Int("edges", s.graph.EdgeCount()))
		s.printf("Edge %d -- %d removed.\n", u, v)
	case stderrors.Is(err, core.ErrEdgeNotFound):
		s.logger.Debug("edge not found", zap.Int("u", u), zap.Int("v", v))
		s.printf("Edge %d -- %d does not exist.\n", u, v)
	default:
		s.logger.Error("remove edge failed", zap.Int("u", u), zap.Int("v", v), zap.Error(err))
		s.printf("Error: %v\n", err)
	}
}

// ShowMST recomputes the minimum spanning tree and prints it.
func (s *Session) ShowMST() {
	mst, total, err := prim_kruskal.Kruskal(s.graph)
	switch {
	case err == nil:
	case stderrors.Is(err, prim_kruskal.ErrDisconnected):
		s.logger.Debug("graph is disconnected",
			zap.Int("nodes", s.graph.NodeCount()),
			zap.Int("components", len(prim_kruskal.Components(s.graph))))
		s.printf("Graph is disconnected. MST cannot be formed.\n")
		return
	default:
		s.logger.Error("mst failed", zap.Error(err))
		s.printf("Error: %v\n", err)
		return
	}

	fp := core.Fingerprint(mst)
	s.logger.Debug("mst computed",
		zap.Int("edges", len(mst)), zap.Int64("weight", total), zap.Uint64("fingerprint", fp))
	s.printf("Minimum Spanning Tree (Weight: %d):\n", total)
	for _, e := range mst {
		s.printf("%d -- %d (weight: %d)\n", e.From, e.To, e.Weight)
	}
	s.printf("Fingerprint: %016x\n", fp)
}
