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

package cluster

import (
	"context"
	"fmt"
	"sort"

	"github.com/distribution/reference"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	apperrors "github.com/k3sgate/k3sgate/pkg/errors"
)

// ListPods returns the simplified pods in a namespace.
func (c *Client) ListPods(ctx context.Context, namespace string) ([]Pod, error) {
	list, err := c.ClientSet.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list pods in %q: %w", namespace, err)
	}

	pods := make([]Pod, 0, len(list.Items))
	for i := range list.Items {
		pods = append(pods, toPod(&list.Items[i]))
	}
	return pods, nil
}

// GetPod returns a single simplified pod.
func (c *Client) GetPod(ctx context.Context, namespace, name string) (*Pod, error) {
	pod, err := c.ClientSet.CoreV1().Pods(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get pod %q: %w", name, err)
	}

	p := toPod(pod)
	return &p, nil
}

// CreatePod creates a single-container pod from the simplified spec.
func (c *Client) CreatePod(ctx context.Context, namespace string, spec *PodSpec) (*Pod, error) {
	if err := validatePodSpec(spec); err != nil {
		return nil, err
	}

	pod, err := c.ClientSet.CoreV1().Pods(namespace).Create(ctx, buildPod(spec), metav1.CreateOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create pod %q: %w", spec.Name, err)
	}

	p := toPod(pod)
	return &p, nil
}

// UpdatePod updates the mutable parts of an existing pod: container image
// and labels. Everything else on a running pod is immutable in the cluster.
func (c *Client) UpdatePod(ctx context.Context, namespace, name string, spec *PodSpec) (*Pod, error) {
	if err := validatePodSpec(spec); err != nil {
		return nil, err
	}

	existing, err := c.ClientSet.CoreV1().Pods(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get pod %q: %w", name, err)
	}

	existing.Labels = spec.Labels
	if len(existing.Spec.Containers) > 0 {
		existing.Spec.Containers[0].Image = spec.Image
	}

	updated, err := c.ClientSet.CoreV1().Pods(namespace).Update(ctx, existing, metav1.UpdateOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to update pod %q: %w", name, err)
	}

	p := toPod(updated)
	return &p, nil
}

// DeletePod removes a pod.
func (c *Client) DeletePod(ctx context.Context, namespace, name string) error {
	if err := c.ClientSet.CoreV1().Pods(namespace).Delete(ctx, name, metav1.DeleteOptions{}); err != nil {
		return fmt.Errorf("failed to delete pod %q: %w", name, err)
	}
	return nil
}

// validatePodSpec rejects specs the cluster would accept syntactically but
// that this API considers malformed. The image string must be a valid
// registry reference.
func validatePodSpec(spec *PodSpec) error {
	if err := validateName(spec.Name); err != nil {
		return err
	}

	if spec.Image == "" {
		return apperrors.New(apperrors.ErrCodeInvalidRequest, "pod image is required")
	}

	if _, err := reference.ParseNormalizedNamed(spec.Image); err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid container image reference", err, map[string]any{"image": spec.Image})
	}

	switch spec.RestartPolicy {
	case "", string(corev1.RestartPolicyAlways), string(corev1.RestartPolicyOnFailure), string(corev1.RestartPolicyNever):
	default:
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid restart policy", map[string]any{"restartPolicy": spec.RestartPolicy})
	}

	return nil
}

func buildPod(spec *PodSpec) *corev1.Pod {
	container := corev1.Container{
		Name:    spec.Name,
		Image:   spec.Image,
		Command: spec.Command,
		Args:    spec.Args,
	}

	// Env map is sorted for deterministic output
	keys := make([]string, 0, len(spec.Env))
	for k := range spec.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		container.Env = append(container.Env, corev1.EnvVar{Name: k, Value: spec.Env[k]})
	}

	for _, port := range spec.Ports {
		container.Ports = append(container.Ports, corev1.ContainerPort{ContainerPort: port})
	}

	restartPolicy := corev1.RestartPolicyAlways
	if spec.RestartPolicy != "" {
		restartPolicy = corev1.RestartPolicy(spec.RestartPolicy)
	}

	return &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:   spec.Name,
			Labels: spec.Labels,
		},
		Spec: corev1.PodSpec{
			Containers:    []corev1.Container{container},
			RestartPolicy: restartPolicy,
		},
	}
}

func toPod(pod *corev1.Pod) Pod {
	p := Pod{
		Name:      pod.Name,
		Namespace: pod.Namespace,
		Phase:     string(pod.Status.Phase),
		PodIP:     pod.Status.PodIP,
		Node:      pod.Spec.NodeName,
		Labels:    pod.Labels,
		CreatedAt: pod.CreationTimestamp.Time,
	}

	ready := len(pod.Status.ContainerStatuses) > 0
	for _, cs := range pod.Status.ContainerStatuses {
		if !cs.Ready {
			ready = false
		}
		p.Restarts += cs.RestartCount
	}
	p.Ready = ready

	p.Images = make([]string, 0, len(pod.Spec.Containers))
	for _, container := range pod.Spec.Containers {
		p.Images = append(p.Images, container.Image)
	}

	return p
}
