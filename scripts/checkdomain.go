package main

import (
	"context"
	"fmt"
	"os"

	"github.com/resend/resend-go/v2"
)

// Small operational helper: shows the Resend sending-domain status for
// zentherasoft.com and forces a verification run when it is not verified yet.
//
//	RESEND_API_KEY=re_xxx go run scripts/checkdomain.go

const domainName = "zentherasoft.com"

func main() {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		fmt.Println("RESEND_API_KEY is not set")
		os.Exit(1)
	}

	client := resend.NewClient(apiKey)
	ctx := context.Background()

	domains, err := client.Domains.ListWithContext(ctx)
	if err != nil {
		fmt.Println("Error listing domains:", err)
		os.Exit(1)
	}

	fmt.Println("Dominios registrados en Resend:")
	var domainID string
	for _, d := range domains.Data {
		fmt.Printf("- %s (id: %s, status: %s)\n", d.Name, d.Id, d.Status)
		if d.Name == domainName {
			domainID = d.Id
		}
	}

	if domainID == "" {
		fmt.Printf("El dominio %s no está registrado.\n", domainName)
		return
	}

	details, err := client.Domains.GetWithContext(ctx, domainID)
	if err != nil {
		fmt.Println("Error fetching domain details:", err)
		os.Exit(1)
	}

	fmt.Printf("\nDetalles del dominio %q:\n", domainName)
	fmt.Println("ID:", details.Id)
	fmt.Println("Nombre:", details.Name)
	fmt.Println("Status:", details.Status)
	fmt.Println("Región:", details.Region)
	fmt.Println("Creado:", details.CreatedAt)

	if details.Status == "verified" {
		fmt.Println("El dominio ya está verificado.")
		return
	}

	fmt.Printf("\nForzando verificación del dominio %s...\n", domainName)
	verified, err := client.Domains.VerifyWithContext(ctx, domainID)
	if err != nil {
		fmt.Println("Error verificando el dominio:", err)
		os.Exit(1)
	}
	fmt.Println("Resultado verificación:", verified)
}
