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

// Package grpcx carries problem documents across gRPC.
//
// ToStatus encodes a problem into a *status.Status with the full
// document attached as a structured detail; FromError recovers it on
// the other side. UnaryServerInterceptor applies a mapper.Mapper to
// every error leaving a unary handler.
package grpcx
