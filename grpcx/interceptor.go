/*
   Copyright 2025 The Probx Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package grpcx

import (
	"context"

	"google.golang.org/grpc"

	"probx.dev/problems"
	"probx.dev/problems/mapper"
)

// UnaryServerInterceptor returns an interceptor that converts handler
// errors into gRPC statuses carrying problem documents.
//
// Errors wrapping a *problems.Error are encoded from their embedded
// problem directly. Other errors go through m; errors with no mapping
// metadata, and errors the engine fails on, pass through unchanged so
// handlers keep full control over statuses they build themselves.
func UnaryServerInterceptor(m *mapper.Mapper) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		if pe, ok := err.(*problems.Error); ok {
			return nil, ToStatus(pe.Problem()).Err()
		}

		if !m.IsMappingCandidate(err) {
			return nil, err
		}
		b, mapErr := m.ToProblemBuilder(err)
		if mapErr != nil {
			return nil, err
		}
		return nil, ToStatus(b.Build()).Err()
	}
}
