package sqlinline

const QAssetCounts = `--sql 7f2de105-2f30-4d26-8e68-aaa4149e1a7b
select
  (select count(*) from domains),
  (select count(*) from domains where status = 'active'),
  (select count(*) from domains where status = 'parked'),
  (select count(*) from trademarks),
  (select count(*) from trade_names),
  (select count(*) from mercantile_records),
  (select count(*) from domain_watchlist);
`
