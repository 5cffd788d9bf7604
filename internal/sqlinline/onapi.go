package sqlinline

const trademarkColumns = `
  t.id::text,
  t.name,
  t.type,
  t.nice_class,
  t.expediente,
  t.certificate,
  t.entity_id::text,
  e.name,
  t.vertical_id::text,
  v.name,
  t.status,
  t.registered_at,
  t.expiry_date,
  t.renewal_cost,
  t.logo_url,
  t.notes,
  t.created_at,
  t.updated_at
from trademarks t
left join entities e on e.id = t.entity_id
left join verticals v on v.id = t.vertical_id
`

const QListTrademarks = `--sql 533a20c4-40d4-4008-90cb-933fb506b1e0
select` + trademarkColumns + `
order by t.name asc;
`

const QListRenewingTrademarks = `--sql 2fb6d94d-edd3-44af-8bf6-06b37da2d5c2
select` + trademarkColumns + `
where t.expiry_date is not null
order by t.expiry_date asc, t.name asc
limit nullif($1::int, 0);
`

const QSelectTrademarkByID = `--sql 6f9683a3-cffd-48ff-a35d-b271b94bb8c5
select` + trademarkColumns + `
where t.id = $1::uuid
limit 1;
`

const QInsertTrademark = `--sql ab8085c9-8e66-45ec-9de3-37ff3283a8fb
insert into trademarks(
  name, type, nice_class, expediente, certificate, entity_id, vertical_id, status,
  registered_at, expiry_date, renewal_cost, logo_url, notes
) values (
  $1::text, $2::text, $3::text, $4::text, $5::text, $6::uuid, $7::uuid, $8::text,
  $9::date, $10::date, $11::numeric, $12::text, $13::text
)
returning id::text, created_at, updated_at;
`

const QUpdateTrademark = `--sql e75fd0a9-ab5c-453f-8c56-be1c51dc40ff
update trademarks set
  name = $2::text,
  type = $3::text,
  nice_class = $4::text,
  expediente = $5::text,
  certificate = $6::text,
  entity_id = $7::uuid,
  vertical_id = $8::uuid,
  status = $9::text,
  registered_at = $10::date,
  expiry_date = $11::date,
  renewal_cost = $12::numeric,
  logo_url = $13::text,
  notes = $14::text,
  updated_at = now()
where id = $1::uuid
returning updated_at;
`

const QDeleteTrademark = `--sql 8412f65b-b538-43f1-94fc-93468a8c949a
delete from trademarks where id = $1::uuid;
`

const tradeNameColumns = `
  n.id::text,
  n.name,
  n.expediente,
  n.certificate,
  n.entity_id::text,
  e.name,
  n.status,
  n.registered_at,
  n.expiry_date,
  n.renewal_cost,
  n.notes,
  n.created_at,
  n.updated_at
from trade_names n
left join entities e on e.id = n.entity_id
`

const QListTradeNames = `--sql d90b5e7a-6f21-464f-ab13-6e65e2c2d0ec
select` + tradeNameColumns + `
order by n.name asc;
`

const QListRenewingTradeNames = `--sql c314228a-c029-4824-89b1-e69dc38883c8
select` + tradeNameColumns + `
where n.expiry_date is not null
order by n.expiry_date asc, n.name asc
limit nullif($1::int, 0);
`

const QSelectTradeNameByID = `--sql 5cb423b2-5fa1-46b5-8afd-a878efb3fc41
select` + tradeNameColumns + `
where n.id = $1::uuid
limit 1;
`

const QInsertTradeName = `--sql 206f9bca-9bed-4810-aa78-6ecbdd8b0684
insert into trade_names(
  name, expediente, certificate, entity_id, status, registered_at, expiry_date, renewal_cost, notes
) values (
  $1::text, $2::text, $3::text, $4::uuid, $5::text, $6::date, $7::date, $8::numeric, $9::text
)
returning id::text, created_at, updated_at;
`

const QUpdateTradeName = `--sql 3348e98c-f247-4818-8619-41b3a3d2fe1f
update trade_names set
  name = $2::text,
  expediente = $3::text,
  certificate = $4::text,
  entity_id = $5::uuid,
  status = $6::text,
  registered_at = $7::date,
  expiry_date = $8::date,
  renewal_cost = $9::numeric,
  notes = $10::text,
  updated_at = now()
where id = $1::uuid
returning updated_at;
`

const QDeleteTradeName = `--sql ad24519e-9f16-4ebd-b3c2-288074abb309
delete from trade_names where id = $1::uuid;
`
