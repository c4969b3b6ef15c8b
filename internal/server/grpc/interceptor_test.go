package grpc

import (
	"context"
	"testing"

	"github.com/mbaklanov/chatline/internal/common"
	pb "github.com/mbaklanov/chatline/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
)

func TestAccessTokenInterceptor_PublicMethodPassesThrough(t *testing.T) {
	s := newServer(&fakeUsers{authorizeErr: common.ErrInvalidToken}, &fakeChat{})

	called := false
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		called = true
		return nil, nil
	}

	info := &grpc.UnaryServerInfo{FullMethod: pb.ChatService_Login_FullMethodName}
	if _, err := s.accessTokenInterceptor(context.Background(), nil, info, handler); err != nil {
		t.Fatalf("public method: %v", err)
	}
	if !called {
		t.Error("expected handler to run without a token")
	}
}

func TestAccessTokenInterceptor_MissingToken(t *testing.T) {
	s := newServer(&fakeUsers{}, &fakeChat{})

	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler must not run")
		return nil, nil
	}

	info := &grpc.UnaryServerInfo{FullMethod: pb.ChatService_SendMessage_FullMethodName}
	_, err := s.accessTokenInterceptor(context.Background(), nil, info, handler)
	wantCode(t, err, codes.Unauthenticated)
}

func TestAccessTokenInterceptor_InvalidToken(t *testing.T) {
	s := newServer(&fakeUsers{authorizeErr: common.ErrInvalidToken}, &fakeChat{})

	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(common.AccessTokenHeaderName, "garbage"))

	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		t.Fatal("handler must not run")
		return nil, nil
	}

	info := &grpc.UnaryServerInfo{FullMethod: pb.ChatService_SendMessage_FullMethodName}
	_, err := s.accessTokenInterceptor(ctx, nil, info, handler)
	wantCode(t, err, codes.Unauthenticated)
}

func TestAccessTokenInterceptor_StoresUsername(t *testing.T) {
	s := newServer(&fakeUsers{authorizeUser: "alice"}, &fakeChat{})

	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(common.AccessTokenHeaderName, "valid-token"))

	var got string
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		username, err := usernameFromContext(ctx)
		if err != nil {
			return nil, err
		}
		got = username
		return nil, nil
	}

	info := &grpc.UnaryServerInfo{FullMethod: pb.ChatService_SendMessage_FullMethodName}
	if _, err := s.accessTokenInterceptor(ctx, nil, info, handler); err != nil {
		t.Fatalf("interceptor error: %v", err)
	}
	if got != "alice" {
		t.Errorf("expected alice in context, got %q", got)
	}
}

// minimal ServerStream stub for the stream interceptor
type stubServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *stubServerStream) Context() context.Context { return s.ctx }

func TestAccessTokenStreamInterceptor(t *testing.T) {
	s := newServer(&fakeUsers{authorizeUser: "alice"}, &fakeChat{})

	ctx := metadata.NewIncomingContext(context.Background(),
		metadata.Pairs(common.AccessTokenHeaderName, "valid-token"))

	var got string
	handler := func(srv interface{}, ss grpc.ServerStream) error {
		username, err := usernameFromContext(ss.Context())
		if err != nil {
			return err
		}
		got = username
		return nil
	}

	info := &grpc.StreamServerInfo{FullMethod: pb.ChatService_MessageStream_FullMethodName}
	if err := s.accessTokenStreamInterceptor(nil, &stubServerStream{ctx: ctx}, info, handler); err != nil {
		t.Fatalf("stream interceptor error: %v", err)
	}
	if got != "alice" {
		t.Errorf("expected alice in stream context, got %q", got)
	}
}

func TestAccessTokenStreamInterceptor_MissingToken(t *testing.T) {
	s := newServer(&fakeUsers{}, &fakeChat{})

	handler := func(srv interface{}, ss grpc.ServerStream) error {
		t.Fatal("handler must not run")
		return nil
	}

	info := &grpc.StreamServerInfo{FullMethod: pb.ChatService_MessageStream_FullMethodName}
	err := s.accessTokenStreamInterceptor(nil, &stubServerStream{ctx: context.Background()}, info, handler)
	wantCode(t, err, codes.Unauthenticated)
}
