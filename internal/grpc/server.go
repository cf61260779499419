package grpc

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/labstack/gommon/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "terminal-terrace/blog/protobuf/proto/blog_service"
)

// Server wraps the gRPC server
type Server struct {
	grpcServer *grpc.Server
	listener   net.Listener
}

// NewServer creates a gRPC server listening on host:port with the blog service registered
func NewServer(host string, port int, blogService pb.BlogServiceServer) (*Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", host, port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen on port %d: %w", port, err)
	}
	return NewServerWithListener(listener, blogService), nil
}

// NewServerWithListener 使用已有的 listener，测试中配合 bufconn
func NewServerWithListener(listener net.Listener, blogService pb.BlogServiceServer) *Server {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(recoveryInterceptor, loggingInterceptor),
	)

	pb.RegisterBlogServiceServer(grpcServer, blogService)

	return &Server{
		grpcServer: grpcServer,
		listener:   listener,
	}
}

// Start starts the gRPC server (blocking)
func (s *Server) Start() error {
	return s.grpcServer.Serve(s.listener)
}

// Stop gracefully stops the gRPC server
func (s *Server) Stop() {
	s.grpcServer.GracefulStop()
}

// GetAddr returns the server address
func (s *Server) GetAddr() string {
	return s.listener.Addr().String()
}

// loggingInterceptor 记录方法、状态码与耗时
func loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	begin := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	switch code {
	case codes.OK:
		log.Infof("gRPC %s -> %s in %v", info.FullMethod, code, time.Since(begin))
	case codes.Internal, codes.Unknown:
		log.Errorf("gRPC %s -> %s in %v: %v", info.FullMethod, code, time.Since(begin), err)
	default:
		log.Warnf("gRPC %s -> %s in %v", info.FullMethod, code, time.Since(begin))
	}
	return resp, err
}

// recoveryInterceptor 捕获 panic 并返回 Internal
func recoveryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("gRPC %s panic recovered: %v", info.FullMethod, r)
			err = status.Error(codes.Internal, "服务器内部错误")
		}
	}()
	return handler(ctx, req)
}
