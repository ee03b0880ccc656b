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

func (g *Gateway) handleListServices(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := g.opContext(r)
	defer cancel()

	services, err := g.cluster.ListServices(ctx, r.PathValue("namespace"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	serializer.Respond(w, r, http.StatusOK, services)
}

func (g *Gateway) handleGetService(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := g.opContext(r)
	defer cancel()

	svc, err := g.cluster.GetService(ctx, r.PathValue("namespace"), r.PathValue("name"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	serializer.Respond(w, r, http.StatusOK, svc)
}

func (g *Gateway) handleCreateService(w http.ResponseWriter, r *http.Request) {
	var spec cluster.ServiceSpec
	if err := decodeBody(w, r, &spec); err != nil {
		respondError(w, r, err)
		return
	}

	ctx, cancel := g.opContext(r)
	defer cancel()

	svc, err := g.cluster.CreateService(ctx, r.PathValue("namespace"), &spec)
	if err != nil {
		respondError(w, r, err)
		return
	}

	serializer.Respond(w, r, http.StatusCreated, svc)
}

func (g *Gateway) handleUpdateService(w http.ResponseWriter, r *http.Request) {
	var spec cluster.ServiceSpec
	if err := decodeBody(w, r, &spec); err != nil {
		respondError(w, r, err)
		return
	}

	ctx, cancel := g.opContext(r)
	defer cancel()

	svc, err := g.cluster.UpdateService(ctx, r.PathValue("namespace"), r.PathValue("name"), &spec)
	if err != nil {
		respondError(w, r, err)
		return
	}

	serializer.Respond(w, r, http.StatusOK, svc)
}

func (g *Gateway) handleDeleteService(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := g.opContext(r)
	defer cancel()

	if err := g.cluster.DeleteService(ctx, r.PathValue("namespace"), r.PathValue("name")); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
