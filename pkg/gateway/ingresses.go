// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gateway

import (
	"net/http"

	"github.com/k3sgate/k3sgate/pkg/cluster"
	"github.com/k3sgate/k3sgate/pkg/serializer"
)

func (g *Gateway) handleListIngresses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := g.opContext(r)
	defer cancel()

	ingresses, err := g.cluster.ListIngresses(ctx, r.PathValue("namespace"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	serializer.Respond(w, r, http.StatusOK, ingresses)
}

func (g *Gateway) handleGetIngress(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := g.opContext(r)
	defer cancel()

	ing, err := g.cluster.GetIngress(ctx, r.PathValue("namespace"), r.PathValue("name"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	serializer.Respond(w, r, http.StatusOK, ing)
}

func (g *Gateway) handleCreateIngress(w http.ResponseWriter, r *http.Request) {
	var spec cluster.IngressSpec
	if err := decodeBody(w, r, &spec); err != nil {
		respondError(w, r, err)
		return
	}

	ctx, cancel := g.opContext(r)
	defer cancel()

	ing, err := g.cluster.CreateIngress(ctx, r.PathValue("namespace"), &spec)
	if err != nil {
		respondError(w, r, err)
		return
	}

	serializer.Respond(w, r, http.StatusCreated, ing)
}

func (g *Gateway) handleUpdateIngress(w http.ResponseWriter, r *http.Request) {
	var spec cluster.IngressSpec
	if err := decodeBody(w, r, &spec); err != nil {
		respondError(w, r, err)
		return
	}

	ctx, cancel := g.opContext(r)
	defer cancel()

	ing, err := g.cluster.UpdateIngress(ctx, r.PathValue("namespace"), r.PathValue("name"), &spec)
	if err != nil {
		respondError(w, r, err)
		return
	}

	serializer.Respond(w, r, http.StatusOK, ing)
}

func (g *Gateway) handleDeleteIngress(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := g.opContext(r)
	defer cancel()

	if err := g.cluster.DeleteIngress(ctx, r.PathValue("namespace"), r.PathValue("name")); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
