package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"

	"acta_flow_app_go/config"
	"acta_flow_app_go/db"
	"acta_flow_app_go/models"
	"acta_flow_app_go/services"

	"golang.org/x/term"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	err := db.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.Tenant{},
		&models.TenantUser{},
		&models.Session{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	reader := bufio.NewReader(os.Stdin)

	// Get user details
	fmt.Println("=== Create New User ===")
	fmt.Println()

	fmt.Print("Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)

	fmt.Print("Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)

	fmt.Printf("Role (%s/%s/%s) [%s]: ", models.UserRoleFree, models.UserRolePro, models.UserRoleAdmin, models.UserRoleFree)
	role, _ := reader.ReadString('\n')
	role = strings.TrimSpace(role)
	if role == "" {
		role = models.UserRoleFree
	}
	if !models.IsValidUserRole(role) {
		log.Fatalf("Invalid role: %s", role)
	}

	fmt.Print("Tenant name (blank to skip): ")
	tenantName, _ := reader.ReadString('\n')
	tenantName = strings.TrimSpace(tenantName)

	plan := models.PlanFree
	if tenantName != "" {
		fmt.Printf("Plan (%s/%s/%s) [%s]: ", models.PlanFree, models.PlanPro, models.PlanEnterprise, models.PlanFree)
		planInput, _ := reader.ReadString('\n')
		planInput = strings.TrimSpace(planInput)
		if planInput != "" {
			plan = planInput
		}
		if plan != models.PlanFree && plan != models.PlanPro && plan != models.PlanEnterprise {
			log.Fatalf("Invalid plan: %s", plan)
		}
	}

	// Get password securely
	fmt.Print("Password: ")
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		log.Fatalf("Failed to read password: %v", err)
	}
	password := string(passwordBytes)
	fmt.Println() // New line after password input

	// Validate inputs
	if name == "" || email == "" || password == "" {
		log.Fatal("Name, email, and password are required")
	}

	if len(password) < 8 {
		log.Fatal("Password must be at least 8 characters long")
	}

	// Check if user already exists
	var existingUser models.User
	if err := db.DB.Where("email = ?", email).First(&existingUser).Error; err == nil {
		log.Fatalf("User with email %s already exists", email)
	}

	// Hash password
	hashedPassword, err := services.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
		IsActive: true,
	}

	if err := db.DB.Create(user).Error; err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	if err := services.SetUserRole(db.DB, user.ID, role); err != nil {
		log.Fatalf("Failed to set role: %v", err)
	}

	if tenantName != "" {
		if _, err := services.CreateTenantWithOwner(db.DB, tenantName, plan, user.ID); err != nil {
			log.Fatalf("Failed to create tenant: %v", err)
		}

		welcome := services.BuildWelcomeEmail(user.Email, tenantName, cfg.AppURL)
		if err := services.SendEmail(cfg, welcome); err != nil {
			log.Printf("[WARNING] Failed to send welcome email: %v", err)
		}
	}

	fmt.Println()
	fmt.Println("✓ User created successfully!")
	fmt.Printf("  ID: %s\n", user.ID)
	fmt.Printf("  Name: %s\n", user.Name)
	fmt.Printf("  Email: %s\n", user.Email)
	fmt.Printf("  Role: %s\n", role)
	if tenantName != "" {
		fmt.Printf("  Tenant: %s (%s)\n", tenantName, plan)
	}
}
