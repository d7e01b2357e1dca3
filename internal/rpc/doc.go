package rpc

//go:generate protoc --proto_path=../rpc_proto --go_out=plugins=grpc:./ engine.proto
