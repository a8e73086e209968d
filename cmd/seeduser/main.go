// seeduser cria o usuário da dona do salão, se ainda não existir.
//
// Uso: go run ./cmd/seeduser -email dona@salao.com -nome "Núbia" -senha "..."
// A senha também pode vir da variável de ambiente SEED_USER_PASSWORD.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nubiasantos/salao-api/internal/domain/entity"
	"github.com/nubiasantos/salao-api/internal/infrastructure/postgres"
	"github.com/nubiasantos/salao-api/pkg/config"
)

func main() {
	email := flag.String("email", "", "email de acesso")
	nome := flag.String("nome", "", "nome exibido no app")
	senha := flag.String("senha", "", "senha em texto claro (ou SEED_USER_PASSWORD)")
	flag.Parse()

	if *senha == "" {
		*senha = os.Getenv("SEED_USER_PASSWORD")
	}
	if *email == "" || *nome == "" || *senha == "" {
		fmt.Fprintln(os.Stderr, "uso: seeduser -email <email> -nome <nome> -senha <senha>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carregar configuração: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexão ao PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewUserRepository(pool)

	existing, err := repo.FindByEmail(ctx, *email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "consultar usuário: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("usuário %s já existe (id %s), nada a fazer\n", *email, existing.ID)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*senha), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gerar hash da senha: %v\n", err)
		os.Exit(1)
	}

	user := &entity.User{
		ID:           uuid.NewString(),
		Email:        *email,
		PasswordHash: string(hash),
		Name:         *nome,
		CreatedAt:    time.Now(),
	}
	if err := repo.Create(ctx, user); err != nil {
		fmt.Fprintf(os.Stderr, "criar usuário: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("usuário %s criado (id %s)\n", *email, user.ID)
}
