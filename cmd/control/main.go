package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Luisfch1/CONTROL/internal/config"
	"github.com/Luisfch1/CONTROL/internal/server"
)

var (
	port    = flag.Int("port", 0, "puerto del servidor (sobrescribe config.toml)")
	devMode = flag.Bool("dev", false, "modo desarrollo")
	dataDir = flag.String("dataDir", "", "directorio de datos (sobrescribe config.toml)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  CONTROL - Corte y valorización de obra")
	fmt.Println("==========================================")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("no se pudo cargar la configuración, usando valores por defecto: %v", err)
		cfg = config.DefaultConfig()
	}

	if *port > 0 {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("no se pudo crear el directorio de datos: %v", err)
	} else {
		fmt.Printf("directorio de datos: %s\n", dir)
	}

	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		fmt.Printf("servidor escuchando en http://localhost:%d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("no se pudo iniciar el servidor: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\ncerrando el servicio...")
	if err := srv.Close(); err != nil {
		log.Printf("error al cerrar el almacenamiento: %v", err)
	}
}
