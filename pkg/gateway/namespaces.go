package gateway

import (
	"net/http"

	"github.com/k3sgate/k3sgate/pkg/serializer"
)

// Namespaces are read-only through the API.
func (g *Gateway) handleListNamespaces(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := g.opContext(r)
	defer cancel()

	namespaces, err := g.cluster.ListNamespaces(ctx)
	if err != nil {
		respondError(w, r, err)
		return
	}

	serializer.Respond(w, r, http.StatusOK, namespaces)
}
