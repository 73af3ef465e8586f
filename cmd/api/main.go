package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nicoladla/drivent-booking/internal/consumer"
	"github.com/Nicoladla/drivent-booking/internal/handlers"
	"github.com/Nicoladla/drivent-booking/internal/repository"
	"github.com/Nicoladla/drivent-booking/internal/service"
	"github.com/Nicoladla/drivent-booking/pkg/config"
	"github.com/Nicoladla/drivent-booking/pkg/db"
	"github.com/Nicoladla/drivent-booking/pkg/mq"
	"github.com/Nicoladla/drivent-booking/pkg/obs"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	cfg := must(config.Load())

	shutdownTracer := obs.InitTracer("drivent-booking")

	// DB
	gdb := must(db.Open(cfg.PGDSN))
	bookingRepo := repository.NewBookingRepo(gdb)
	roomRepo := repository.NewRoomRepo(gdb)
	hotelRepo := repository.NewHotelRepo(gdb)
	ticketRepo := repository.NewTicketRepo(gdb)
	must(0, bookingRepo.Migrate())
	must(0, roomRepo.Migrate())
	must(0, hotelRepo.Migrate())
	must(0, ticketRepo.Migrate())

	// Publisher for booking.* events
	bookingPub := must(mq.NewPublisher(cfg.RabbitURL, cfg.BookingExchange))
	defer bookingPub.Close()

	// Services
	roomSvc := service.NewRoomSvc(roomRepo, bookingRepo)
	eligibilitySvc := service.NewEligibilitySvc(ticketRepo)
	bookingSvc := service.NewBookingSvc(bookingRepo, roomSvc, eligibilitySvc, bookingPub)
	hotelSvc := service.NewHotelSvc(hotelRepo)

	// Consumer (listens for payment.paid)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	paymentCons := must(mq.NewConsumer(cfg.RabbitURL, cfg.PaymentExchange, cfg.PaymentQueue, []string{"payment.paid"}))
	defer paymentCons.Close()
	pc := consumer.NewPaymentConsumer(ticketRepo, paymentCons)
	must(0, pc.Run(ctx))
	log.Println("[api] consumer started (payment.paid)")

	// HTTP
	r := handlers.NewRouter(
		handlers.NewBookingHandler(bookingSvc),
		handlers.NewHotelHandler(hotelSvc),
	)
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	go func() {
		log.Println("[api] http listening on", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	cancel()

	shutCtx, shutCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutCancel()
	_ = srv.Shutdown(shutCtx)
	_ = shutdownTracer(shutCtx)
	log.Println("[api] stopped")
}
