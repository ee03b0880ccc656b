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

func (g *Gateway) handleListPods(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := g.opContext(r)
	defer cancel()

	pods, err := g.cluster.ListPods(ctx, r.PathValue("namespace"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	serializer.Respond(w, r, http.StatusOK, pods)
}

func (g *Gateway) handleGetPod(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := g.opContext(r)
	defer cancel()

	pod, err := g.cluster.GetPod(ctx, r.PathValue("namespace"), r.PathValue("name"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	serializer.Respond(w, r, http.StatusOK, pod)
}

func (g *Gateway) handleCreatePod(w http.ResponseWriter, r *http.Request) {
	var spec cluster.PodSpec
	if err := decodeBody(w, r, &spec); err != nil {
		respondError(w, r, err)
		return
	}

	ctx, cancel := g.opContext(r)
	defer cancel()

	pod, err := g.cluster.CreatePod(ctx, r.PathValue("namespace"), &spec)
	if err != nil {
		respondError(w, r, err)
		return
	}

	serializer.Respond(w, r, http.StatusCreated, pod)
}

func (g *Gateway) handleUpdatePod(w http.ResponseWriter, r *http.Request) {
	var spec cluster.PodSpec
	if err := decodeBody(w, r, &spec); err != nil {
		respondError(w, r, err)
		return
	}

	ctx, cancel := g.opContext(r)
	defer cancel()

	pod, err := g.cluster.UpdatePod(ctx, r.PathValue("namespace"), r.PathValue("name"), &spec)
	if err != nil {
		respondError(w, r, err)
		return
	}

	serializer.Respond(w, r, http.StatusOK, pod)
}

func (g *Gateway) handleDeletePod(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := g.opContext(r)
	defer cancel()

	if err := g.cluster.DeletePod(ctx, r.PathValue("namespace"), r.PathValue("name")); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
