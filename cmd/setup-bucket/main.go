package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// เตรียม bucket สำหรับ avatar: สร้างถ้ายังไม่มี + เปิด public read ใต้ avatars/*
func main() {
	godotenv.Load()

	endpoint := os.Getenv("S3_ENDPOINT")
	accessKey := os.Getenv("S3_ACCESS_KEY")
	secretKey := os.Getenv("S3_SECRET_KEY")
	bucket := os.Getenv("S3_BUCKET")
	useSSL := os.Getenv("S3_USE_SSL") == "true"
	region := os.Getenv("S3_REGION")

	if bucket == "" {
		bucket = "avatars"
	}

	fmt.Printf("Endpoint: %s\n", endpoint)
	fmt.Printf("Bucket: %s\n", bucket)

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx := context.Background()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		log.Fatalf("Failed to check bucket: %v", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		fmt.Printf("Bucket '%s' created\n", bucket)
	} else {
		fmt.Printf("Bucket '%s' exists\n", bucket)
	}

	// avatar ต้องอ่านได้จาก browser โดยไม่ต้อง sign URL
	policy := map[string]interface{}{
		"Version": "2012-10-17",
		"Statement": []map[string]interface{}{
			{
				"Effect":    "Allow",
				"Principal": "*",
				"Action":    []string{"s3:GetObject"},
				"Resource":  []string{fmt.Sprintf("arn:aws:s3:::%s/avatars/*", bucket)},
			},
		},
	}

	policyJSON, _ := json.Marshal(policy)

	if err := client.SetBucketPolicy(ctx, bucket, string(policyJSON)); err != nil {
		log.Printf("Warning: failed to set bucket policy: %v", err)
	} else {
		fmt.Println("Bucket policy set (public read for avatars/*)")
	}

	fmt.Println("Done")
}
